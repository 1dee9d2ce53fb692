package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitcore/internal/models/request_models"
	"fitcore/internal/services"
	"fitcore/pkg/utils"
)

type TrainerController struct {
	trainerService services.TrainerServiceInterface
}

func NewTrainerController(trainerService services.TrainerServiceInterface) *TrainerController {
	return &TrainerController{
		trainerService: trainerService,
	}
}

// List godoc
// @Summary List all trainers
// @Tags Trainers
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /trainers [get]
func (t *TrainerController) List(c *gin.Context) {
	trainers, err := t.trainerService.GetAllTrainers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trainers, "")
}

// Get godoc
// @Summary Get a trainer by id
// @Tags Trainers
// @Produce json
// @Param id path string true "Trainer ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trainers/{id} [get]
func (t *TrainerController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trainer id")
		return
	}

	trainer, err := t.trainerService.GetTrainer(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trainer, "")
}

// Create godoc
// @Summary Add a trainer
// @Tags Trainers
// @Accept json
// @Produce json
// @Param request body request_models.TrainerRequest true "Trainer payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trainers [post]
func (t *TrainerController) Create(c *gin.Context) {
	var req request_models.TrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name, salary and phone are required")
		return
	}

	trainer, err := t.trainerService.CreateTrainer(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trainer, "Trainer added successfully")
}

// Update godoc
// @Summary Update a trainer
// @Tags Trainers
// @Accept json
// @Produce json
// @Param id path string true "Trainer ID"
// @Param request body request_models.TrainerRequest true "Trainer payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trainers/{id} [put]
func (t *TrainerController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trainer id")
		return
	}

	var req request_models.TrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name, salary and phone are required")
		return
	}

	if err := t.trainerService.UpdateTrainer(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trainer updated successfully")
}

// Delete godoc
// @Summary Delete a trainer
// @Tags Trainers
// @Produce json
// @Param id path string true "Trainer ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trainers/{id} [delete]
func (t *TrainerController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trainer id")
		return
	}

	if err := t.trainerService.DeleteTrainer(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trainer deleted successfully")
}
