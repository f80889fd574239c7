package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mockview/middleware"
	"mockview/services/approval"
	"mockview/utils"
)

// ApprovalHandler exposes the interviewer verification workflow over HTTP.
type ApprovalHandler struct {
	service approval.Service
	logger  *zap.Logger
}

func NewApprovalHandler(service approval.Service, logger *zap.Logger) *ApprovalHandler {
	return &ApprovalHandler{service: service, logger: logger}
}

// Submit handles POST /api/v1/interviewers/verification-request for the
// authenticated interviewer.
func (h *ApprovalHandler) Submit(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)

	req, err := h.service.Submit(c.Request.Context(), userID)
	if err != nil {
		code := approval.CodeOf(err)
		utils.JSONError(c, approvalStatus(code), code, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Verification request submitted successfully",
		"data":    req,
	})
}

// Approve handles POST /api/v1/admin/approval-requests/:requestId/approve.
func (h *ApprovalHandler) Approve(c *gin.Context) {
	h.decide(c, h.service.Approve, "Approval request approved")
}

// Reject handles POST /api/v1/admin/approval-requests/:requestId/reject.
func (h *ApprovalHandler) Reject(c *gin.Context) {
	h.decide(c, h.service.Reject, "Approval request rejected")
}

func (h *ApprovalHandler) decide(c *gin.Context, fn func(ctx context.Context, requestID string) error, message string) {
	requestID := c.Param("requestId")

	if err := fn(c.Request.Context(), requestID); err != nil {
		code := approval.CodeOf(err)
		utils.JSONError(c, approvalStatus(code), code, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

func approvalStatus(code string) int {
	switch code {
	case approval.CodeNotFound:
		return http.StatusNotFound
	case approval.CodeAlreadyProcessed, approval.CodeRequestPending:
		return http.StatusConflict
	case approval.CodeAlreadyVerified:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
