package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/gigboard/internal/application"
	"github.com/linskybing/gigboard/internal/domain/contract"
)

type ContractHandler struct {
	svc *application.ContractService
}

func NewContractHandler(svc *application.ContractService) *ContractHandler {
	return &ContractHandler{svc: svc}
}

// ListContracts godoc
// @Summary Contracts the caller is a party to
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Success 200 {array} contract.Contract
// @Router /contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	cs, err := h.svc.ListContracts(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	if cs == nil {
		cs = []contract.Contract{}
	}
	c.JSON(http.StatusOK, cs)
}

// GetContract godoc
// @Summary Get a contract
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Contract ID"
// @Success 200 {object} contract.Contract
// @Failure 403 {object} response.ErrorResponse "Not a party"
// @Router /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "contract")
	if !ok {
		return
	}
	ct, err := h.svc.GetContract(uid, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

// SubmitWork godoc
// @Summary Mark the work on a contract as delivered
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Contract ID"
// @Success 200 {object} contract.Contract
// @Failure 403 {object} response.ErrorResponse "Not the hired freelancer"
// @Failure 412 {object} response.ErrorResponse "Already submitted or not active"
// @Router /contracts/{id}/submit-work [post]
func (h *ContractHandler) SubmitWork(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "contract")
	if !ok {
		return
	}
	ct, err := h.svc.SubmitWork(uid, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

// ReleasePayment godoc
// @Summary Pay the freelancer and complete the contract
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Contract ID"
// @Success 201 {object} payment.Payment
// @Failure 403 {object} response.ErrorResponse "Not the client"
// @Failure 412 {object} response.ErrorResponse "Contract not active"
// @Router /contracts/{id}/release [post]
func (h *ContractHandler) ReleasePayment(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "contract")
	if !ok {
		return
	}
	p, err := h.svc.ReleasePayment(uid, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Wallet godoc
// @Summary Payments received by the caller
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} payment.Wallet
// @Router /wallet [get]
func (h *ContractHandler) Wallet(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	w, err := h.svc.Wallet(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}
