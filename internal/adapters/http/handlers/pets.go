package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	httpadapter "github.com/petlink/petlink-api/internal/adapters/http"
	"github.com/petlink/petlink-api/internal/adapters/http/dto"
	"github.com/petlink/petlink-api/internal/app"
	"github.com/petlink/petlink-api/internal/domain"
)

// PetHandler handles the pet registry endpoints.
type PetHandler struct {
	service         *app.PetService
	defaultPageSize int
}

// NewPetHandler creates a new pet handler.
func NewPetHandler(service *app.PetService, defaultPageSize int) *PetHandler {
	if defaultPageSize <= 0 {
		defaultPageSize = domain.DefaultLimits().PageSize
	}
	return &PetHandler{
		service:         service,
		defaultPageSize: defaultPageSize,
	}
}

// List handles GET /api/pets. Query parameters select between the plain
// paginated listing and filtered search; both share the same response shape.
func (h *PetHandler) List(c *gin.Context) {
	var req dto.PetSearchRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		httpadapter.RespondWithBindingError(c, err)
		return
	}
	req.Normalize(h.defaultPageSize)

	pets, total, err := h.service.Search(c.Request.Context(), req.Filter(), req.Page, req.PageSize)
	if err != nil {
		httpadapter.RespondWithError(c, err)
		return
	}

	page := dto.NewPaged(dto.ToPetResponses(pets), req.Page, req.PageSize, total)
	c.JSON(http.StatusOK, dto.OK("Pets retrieved", page))
}

// Get handles GET /api/pets/:id.
func (h *PetHandler) Get(c *gin.Context) {
	id, ok := h.petID(c)
	if !ok {
		return
	}

	pet, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		httpadapter.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Pet retrieved", dto.ToPetResponse(pet)))
}

// Create handles POST /api/pets.
func (h *PetHandler) Create(c *gin.Context) {
	var req dto.PetRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		httpadapter.RespondWithBindingError(c, err)
		return
	}

	pet, err := h.service.Create(c.Request.Context(), req.Attrs())
	if err != nil {
		httpadapter.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("Pet created", dto.ToPetResponse(pet)))
}

// Update handles PUT /api/pets/:id.
func (h *PetHandler) Update(c *gin.Context) {
	id, ok := h.petID(c)
	if !ok {
		return
	}

	var req dto.PetRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		httpadapter.RespondWithBindingError(c, err)
		return
	}

	pet, err := h.service.Update(c.Request.Context(), id, req.Attrs())
	if err != nil {
		httpadapter.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Pet updated", dto.ToPetResponse(pet)))
}

// Delete handles DELETE /api/pets/:id.
func (h *PetHandler) Delete(c *gin.Context) {
	id, ok := h.petID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httpadapter.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Pet deleted", nil))
}

// Adopt handles POST /api/pets/:id/adopt.
func (h *PetHandler) Adopt(c *gin.Context) {
	id, ok := h.petID(c)
	if !ok {
		return
	}

	pet, err := h.service.Adopt(c.Request.Context(), id)
	if err != nil {
		httpadapter.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Pet adopted", dto.ToPetResponse(pet)))
}

// petID parses the :id path parameter. A non-numeric or non-positive value
// is reported as a validation failure before any service call.
func (h *PetHandler) petID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		httpadapter.RespondWithError(c, domain.NewValidationError("Pet id must be a positive integer"))
		return 0, false
	}
	return id, true
}

// RegisterPetRoutes registers the pet routes on the given group. The group
// is expected to carry the authentication middleware already.
func (h *PetHandler) RegisterPetRoutes(rg *gin.RouterGroup) {
	pets := rg.Group("/pets")
	pets.GET("", h.List)
	pets.POST("", h.Create)
	pets.GET("/:id", h.Get)
	pets.PUT("/:id", h.Update)
	pets.DELETE("/:id", h.Delete)
	pets.POST("/:id/adopt", h.Adopt)
}
