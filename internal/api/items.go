package api

import (
	"net/http"

	"rpg_backend/internal/domain"
	"rpg_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ItemStat carries the equip modifiers of an item
type ItemStat struct {
	Health int `json:"health"`
	Power  int `json:"power"`
}

// ItemResponse is the full catalog entry
type ItemResponse struct {
	Code  int      `json:"itemCode"`
	Name  string   `json:"itemName"`
	Stat  ItemStat `json:"itemStat"`
	Price int64    `json:"itemPrice"`
}

func itemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		Code:  item.Code,
		Name:  item.Name,
		Stat:  ItemStat{Health: item.Health, Power: item.Power},
		Price: item.Price,
	}
}

// CreateItemRequest is the body of POST /items
type CreateItemRequest struct {
	Code  int      `json:"itemCode" binding:"required,min=1"`
	Name  string   `json:"itemName" binding:"required,max=64"`
	Stat  ItemStat `json:"itemStat"`
	Price int64    `json:"itemPrice" binding:"min=0"`
}

// PatchItemRequest is the body of PATCH /items/:itemCode; absent fields are kept
type PatchItemRequest struct {
	Name *string `json:"itemName" binding:"omitempty,min=1,max=64"`
	Stat *struct {
		Health *int `json:"health"`
		Power  *int `json:"power"`
	} `json:"itemStat"`
	Price *int64 `json:"itemPrice" binding:"omitempty,min=0"`
}

func (r PatchItemRequest) patch() domain.ItemPatch {
	p := domain.ItemPatch{Name: r.Name, Price: r.Price}
	if r.Stat != nil {
		p.Health = r.Stat.Health
		p.Power = r.Stat.Power
	}
	return p
}

// CreateItemHandler adds an item to the catalog
func CreateItemHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateItemRequest
		if !bindJSON(c, &req) {
			return
		}
		item, err := svc.CreateItem(c.Request.Context(), domain.Item{
			Code:   req.Code,
			Name:   req.Name,
			Health: req.Stat.Health,
			Power:  req.Stat.Power,
			Price:  req.Price,
		})
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"item": itemResponse(item)})
	}
}

// PatchItemHandler updates fields of a catalog item
func PatchItemHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		code, ok := itemCodeParam(c)
		if !ok {
			return
		}
		var req PatchItemRequest
		if !bindJSON(c, &req) {
			return
		}
		item, err := svc.PatchItem(c.Request.Context(), code, req.patch())
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": itemResponse(item)})
	}
}

// ListItemsHandler returns the catalog summary
func ListItemsHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListItems(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}
		if items == nil {
			items = []domain.ItemSummary{}
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// GetItemHandler returns one catalog item
func GetItemHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		code, ok := itemCodeParam(c)
		if !ok {
			return
		}
		item, err := svc.GetItem(c.Request.Context(), code)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": itemResponse(item)})
	}
}
