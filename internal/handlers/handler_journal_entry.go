package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/journal_engine/internal/core/domain"
	portssvc "github.com/SscSPs/journal_engine/internal/core/ports/services"
	"github.com/SscSPs/journal_engine/internal/dto"
	"github.com/SscSPs/journal_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalEntryHandler handles HTTP requests for the journal entry workflow.
type journalEntryHandler struct {
	journalEntryService portssvc.JournalEntrySvcFacade
}

func newJournalEntryHandler(jes portssvc.JournalEntrySvcFacade) *journalEntryHandler {
	return &journalEntryHandler{journalEntryService: jes}
}

// RegisterJournalEntryRoutes registers the journal entry routes on rg.
func RegisterJournalEntryRoutes(rg *gin.RouterGroup, journalEntryService portssvc.JournalEntrySvcFacade) {
	h := newJournalEntryHandler(journalEntryService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createJournalEntry)
		entries.GET("", h.listJournalEntries)
		entries.GET("/:journalEntryID", h.getJournalEntry)
		entries.PUT("/:journalEntryID", h.updateDraft)
		entries.DELETE("/:journalEntryID", h.deleteDraft)
		entries.POST("/:journalEntryID/submit", h.submitDraft)
		entries.POST("/:journalEntryID/approve", h.approveJournalEntry)
		entries.POST("/:journalEntryID/reject", h.rejectJournalEntry)
		entries.POST("/:journalEntryID/resubmit", h.resubmitJournalEntry)
		entries.POST("/:journalEntryID/post", h.postJournalEntry)
		entries.GET("/:journalEntryID/history", h.getJournalEntryHistory)
	}
}

func withNotice(entry *domain.JournalEntry, notice domain.WorkflowNotice) dto.JournalEntryResponse {
	res := dto.ToJournalEntryResponse(entry)
	res.Notice = string(notice)
	return res
}

// createJournalEntry godoc
// @Summary Create a journal entry
// @Description Saves a new entry as a draft, submits it for approval, or posts it directly.
// @Description A post intent from an Accountant is submitted for approval instead and the response carries a notice.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Entry and intent"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed; details lists every problem"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Action not permitted"
// @Failure 500 {object} dto.ErrorResponse "Failed to create journal entry"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalEntryHandler) createJournalEntry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateJournalEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, notice, err := h.journalEntryService.CreateJournalEntry(c.Request.Context(), actor, req)
	if err != nil {
		respondWithError(c, err, "Failed to create journal entry")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal entry created",
		slog.String("journal_entry_id", entry.JournalEntryID),
		slog.String("status", string(entry.Status)))
	c.JSON(http.StatusCreated, withNotice(entry, notice))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Lists entries newest first, optionally only those in one status (e.g. the approval queue).
// @Tags journal-entries
// @Produce  json
// @Param   status query string false "Filter by status" Enums(draft, pending_approval, approved, rejected, posted)
// @Param   limit query int false "Page size (default 50, max 500)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list journal entries"
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalEntryHandler) listJournalEntries(c *gin.Context) {
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	entries, nextToken, err := h.journalEntryService.ListJournalEntries(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListJournalEntriesResponse(entries, nextToken))
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Tags journal-entries
// @Produce  json
// @Param   journalEntryID path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to get journal entry"
// @Security BearerAuth
// @Router /journal-entries/{journalEntryID} [get]
func (h *journalEntryHandler) getJournalEntry(c *gin.Context) {
	entry, err := h.journalEntryService.GetJournalEntry(c.Request.Context(), c.Param("journalEntryID"))
	if err != nil {
		respondWithError(c, err, "Failed to get journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// updateDraft godoc
// @Summary Edit a draft
// @Description Replaces a draft's content. Allowed for the creator, Managers and Administrators.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   journalEntryID path string true "Journal entry ID"
// @Param   entry body dto.UpdateDraftRequest true "New content"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Failure 409 {object} dto.ErrorResponse "Not a draft, not permitted, or changed concurrently"
// @Failure 500 {object} dto.ErrorResponse "Failed to update draft"
// @Security BearerAuth
// @Router /journal-entries/{journalEntryID} [put]
func (h *journalEntryHandler) updateDraft(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateDraftRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.journalEntryService.UpdateDraft(c.Request.Context(), actor, c.Param("journalEntryID"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update draft")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// deleteDraft godoc
// @Summary Delete a draft
// @Tags journal-entries
// @Param   journalEntryID path string true "Journal entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Failure 409 {object} dto.ErrorResponse "Not a draft or not permitted"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete draft"
// @Security BearerAuth
// @Router /journal-entries/{journalEntryID} [delete]
func (h *journalEntryHandler) deleteDraft(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.journalEntryService.DeleteDraft(c.Request.Context(), actor, c.Param("journalEntryID")); err != nil {
		respondWithError(c, err, "Failed to delete draft")
		return
	}
	c.Status(http.StatusNoContent)
}

// submitDraft godoc
// @Summary Submit a draft for approval
// @Tags journal-entries
// @Produce  json
// @Param   journalEntryID path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Stored draft no longer validates"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Failure 409 {object} dto.ErrorResponse "Not a draft"
// @Failure 500 {object} dto.ErrorResponse "Failed to submit draft"
// @Security BearerAuth
// @Router /journal-entries/{journalEntryID}/submit [post]
func (h *journalEntryHandler) submitDraft(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	entry, err := h.journalEntryService.SubmitDraft(c.Request.Context(), actor, c.Param("journalEntryID"))
	if err != nil {
		respondWithError(c, err, "Failed to submit draft")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// approveJournalEntry godoc
// @Summary Approve a pending entry
// @Tags journal-entries
// @Produce  json
// @Param   journalEntryID path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Failure 409 {object} dto.ErrorResponse "Not pending approval or not permitted"
// @Failure 500 {object} dto.ErrorResponse "Failed to approve journal entry"
// @Security BearerAuth
// @Router /journal-entries/{journalEntryID}/approve [post]
func (h *journalEntryHandler) approveJournalEntry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	entry, err := h.journalEntryService.ApproveJournalEntry(c.Request.Context(), actor, c.Param("journalEntryID"))
	if err != nil {
		respondWithError(c, err, "Failed to approve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// rejectJournalEntry godoc
// @Summary Reject a pending entry
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   journalEntryID path string true "Journal entry ID"
// @Param   rejection body dto.RejectJournalEntryRequest true "Rejection reason"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Reason missing"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Failure 409 {object} dto.ErrorResponse "Not pending approval or not permitted"
// @Failure 500 {object} dto.ErrorResponse "Failed to reject journal entry"
// @Security BearerAuth
// @Router /journal-entries/{journalEntryID}/reject [post]
func (h *journalEntryHandler) rejectJournalEntry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.RejectJournalEntryRequest
	if !bindJSON(c, &req) {
		return
	}
	entry, err := h.journalEntryService.RejectJournalEntry(c.Request.Context(), actor, c.Param("journalEntryID"), req)
	if err != nil {
		respondWithError(c, err, "Failed to reject journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// resubmitJournalEntry godoc
// @Summary Resubmit a rejected entry
// @Description The original creator may correct the entry and send it back for approval.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   journalEntryID path string true "Journal entry ID"
// @Param   resubmission body dto.ResubmitJournalEntryRequest false "Optional corrections"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Failure 409 {object} dto.ErrorResponse "Not rejected, not the creator, or changed concurrently"
// @Failure 500 {object} dto.ErrorResponse "Failed to resubmit journal entry"
// @Security BearerAuth
// @Router /journal-entries/{journalEntryID}/resubmit [post]
func (h *journalEntryHandler) resubmitJournalEntry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.ResubmitJournalEntryRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	entry, err := h.journalEntryService.ResubmitJournalEntry(c.Request.Context(), actor, c.Param("journalEntryID"), req)
	if err != nil {
		respondWithError(c, err, "Failed to resubmit journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// postJournalEntry godoc
// @Summary Post an entry to the ledger
// @Description Posts an approved entry, or a draft directly. A draft posted by an Accountant is submitted for approval instead and the response carries a notice.
// @Tags journal-entries
// @Produce  json
// @Param   journalEntryID path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Entry no longer validates"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Failure 409 {object} dto.ErrorResponse "Not postable or not permitted"
// @Failure 500 {object} dto.ErrorResponse "Failed to post journal entry"
// @Security BearerAuth
// @Router /journal-entries/{journalEntryID}/post [post]
func (h *journalEntryHandler) postJournalEntry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	journalEntryID := c.Param("journalEntryID")

	current, err := h.journalEntryService.GetJournalEntry(ctx, journalEntryID)
	if err != nil {
		respondWithError(c, err, "Failed to post journal entry")
		return
	}

	var (
		entry  *domain.JournalEntry
		notice domain.WorkflowNotice
	)
	if current.Status == domain.StatusDraft {
		entry, notice, err = h.journalEntryService.PostDraft(ctx, actor, journalEntryID)
	} else {
		entry, err = h.journalEntryService.PostJournalEntry(ctx, actor, journalEntryID)
	}
	if err != nil {
		respondWithError(c, err, "Failed to post journal entry")
		return
	}

	middleware.GetLoggerFromCtx(ctx).Info("Post request handled",
		slog.String("journal_entry_id", journalEntryID),
		slog.String("status", string(entry.Status)))
	c.JSON(http.StatusOK, withNotice(entry, notice))
}

// getJournalEntryHistory godoc
// @Summary Audit history of an entry
// @Tags journal-entries
// @Produce  json
// @Param   journalEntryID path string true "Journal entry ID"
// @Success 200 {array} dto.AuditEventResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "No history"
// @Failure 500 {object} dto.ErrorResponse "Failed to load history"
// @Security BearerAuth
// @Router /journal-entries/{journalEntryID}/history [get]
func (h *journalEntryHandler) getJournalEntryHistory(c *gin.Context) {
	events, err := h.journalEntryService.GetJournalEntryHistory(c.Request.Context(), c.Param("journalEntryID"))
	if err != nil {
		respondWithError(c, err, "Failed to load history")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditEventResponses(events))
}
