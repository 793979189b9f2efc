package mockapi

import (
	"net/http"

	"github.com/splitmacha/splitmacha/internal/models"
)

func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ListGroups())
}

func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGroupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	// The creator is taken from the bearer token when one is presented;
	// group creation itself is unauthenticated, as in the real backend.
	createdBy := ""
	if claims, err := s.bearerClaims(r); err == nil {
		createdBy = claims.UserID
	}

	now := nowStamp()
	group := models.Group{
		ID:            NewID("group"),
		Name:          req.Name,
		Description:   req.Description,
		AvatarURL:     req.AvatarURL,
		CreatedBy:     createdBy,
		Members:       req.Members,
		TotalExpenses: 0,
		Currency:      "INR",
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.store.InsertGroup(group)

	s.logger.Info("Group created", "group_id", group.ID, "members", len(group.Members))
	writeJSON(w, http.StatusOK, group)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ListExpenses())
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req models.CreateExpenseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	createdBy := ""
	if claims, err := s.bearerClaims(r); err == nil {
		createdBy = claims.UserID
	}

	now := nowStamp()
	expense := models.Expense{
		ID:           NewID("expense"),
		GroupID:      req.GroupID,
		Description:  req.Description,
		Amount:       req.Amount,
		Currency:     req.Currency,
		Category:     req.Category,
		PaidBy:       req.PaidBy,
		SplitMethod:  req.SplitMethod,
		SplitAmong:   req.SplitAmong,
		SplitDetails: req.SplitDetails,
		ExpenseDate:  req.ExpenseDate,
		Notes:        req.Notes,
		Status:       models.ExpenseActive,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.store.InsertExpense(expense)

	s.logger.Info("Expense created", "expense_id", expense.ID, "amount", expense.Amount)
	writeJSON(w, http.StatusOK, expense)
}

func (s *Server) handleListFriends(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ListFriends())
}

func (s *Server) handleListSettlements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ListSettlements())
}

func (s *Server) handleRecordSettlement(w http.ResponseWriter, r *http.Request) {
	var req models.RecordSettlementRequest
	if !decodeBody(w, r, &req) {
		return
	}

	now := nowStamp()
	settlement := models.Settlement{
		ID:               NewID("settlement"),
		GroupID:          req.GroupID,
		FromUserID:       req.FromUserID,
		ToUserID:         req.ToUserID,
		Amount:           req.Amount,
		Currency:         req.Currency,
		PaymentMethod:    req.PaymentMethod,
		PaymentReference: req.PaymentReference,
		Notes:            req.Notes,
		Status:           models.SettlementCompleted,
		SettledAt:        now,
		CreatedAt:        now,
	}
	s.store.InsertSettlement(settlement)

	s.logger.Info("Settlement recorded", "settlement_id", settlement.ID, "amount", settlement.Amount)
	writeJSON(w, http.StatusOK, settlement)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "UP",
		Message:   "Mock API running",
		Timestamp: nowStamp(),
	})
}
