package domain

// Action is a request to move a journal entry through the workflow.
type Action string

const (
	ActionSaveDraft   Action = "save_draft"
	ActionEditDraft   Action = "edit_draft"
	ActionDeleteDraft Action = "delete_draft"
	ActionSubmit      Action = "submit"
	ActionPost        Action = "post"
	ActionApprove     Action = "approve"
	ActionReject      Action = "reject"
	ActionResubmit    Action = "resubmit"
)

type transitionKey struct {
	from   JournalEntryStatus
	action Action
}

// transitions is the complete state machine. A pair that is not listed is illegal.
var transitions = map[transitionKey]JournalEntryStatus{
	{StatusNone, ActionSaveDraft}: StatusDraft,
	{StatusNone, ActionSubmit}:    StatusPendingApproval,
	{StatusNone, ActionPost}:      StatusPosted,

	{StatusDraft, ActionEditDraft}:   StatusDraft,
	{StatusDraft, ActionSubmit}:      StatusPendingApproval,
	{StatusDraft, ActionPost}:        StatusPosted,
	{StatusDraft, ActionDeleteDraft}: StatusNone,

	{StatusPendingApproval, ActionApprove}: StatusApproved,
	{StatusPendingApproval, ActionReject}:  StatusRejected,

	{StatusRejected, ActionResubmit}: StatusPendingApproval,

	{StatusApproved, ActionPost}: StatusPosted,
}

// permission lists the roles allowed to perform an action. When creator is
// set, the user who created the entry is allowed regardless of role.
type permission struct {
	roles   []Role
	creator bool
}

var allRoles = []Role{RoleAdministrator, RoleManager, RoleAccountant}

var privilegedRoles = []Role{RoleAdministrator, RoleManager}

var permissions = map[Action]permission{
	ActionSaveDraft:   {roles: allRoles},
	ActionSubmit:      {roles: allRoles},
	ActionPost:        {roles: privilegedRoles},
	ActionEditDraft:   {roles: privilegedRoles, creator: true},
	ActionDeleteDraft: {roles: privilegedRoles, creator: true},
	ActionApprove:     {roles: privilegedRoles},
	ActionReject:      {roles: privilegedRoles},
	ActionResubmit:    {creator: true},
}

// NextStatus looks up the target of action from the given state.
func NextStatus(from JournalEntryStatus, action Action) (JournalEntryStatus, bool) {
	to, ok := transitions[transitionKey{from: from, action: action}]
	return to, ok
}

// IsAllowed reports whether actor may perform action on entry.
// entry is nil for actions on entries that do not exist yet.
func IsAllowed(action Action, actor Actor, entry *JournalEntry) bool {
	p, ok := permissions[action]
	if !ok {
		return false
	}
	if p.creator && entry != nil && entry.CreatedBy == actor.UserID {
		return true
	}
	for _, r := range p.roles {
		if r == actor.Role {
			return true
		}
	}
	return false
}

// WorkflowNotice tells the caller the request was carried out differently than asked.
type WorkflowNotice string

const (
	NoticeNone WorkflowNotice = ""
	// NoticeSubmittedForApproval is returned when a direct post was downgraded to a submission.
	NoticeSubmittedForApproval WorkflowNotice = "Posting requires an Administrator or Manager; the entry was submitted for approval instead."
)
