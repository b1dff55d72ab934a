package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reservas-api/internal/application/dto"
	"github.com/jhoicas/Reservas-api/internal/application/inventory"
	"github.com/jhoicas/Reservas-api/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP del ledger de inventario.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar inventario de la cadena
// @Tags         inventory
// @Produce      json
// @Param        limit  query  int  false  "Máximo de filas (100 por defecto)"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.ListInventory(c.Context(), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("", fiber.Map{"inventory": items, "total": len(items)}))
}

// LowStock godoc
// @Summary      Productos bajo punto de reorden
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.ListLowStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("", fiber.Map{"lowStock": items, "total": len(items)}))
}

// ByStore godoc
// @Summary      Inventario de una tienda
// @Tags         inventory
// @Produce      json
// @Param        storeId  path  int  true  "Id de tienda"
// @Success      200  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/inventory/stores/{storeId} [get]
func (h *InventoryHandler) ByStore(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("storeId")
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	items, err := h.uc.ListStoreInventory(c.Context(), storeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("", fiber.Map{"inventory": items, "total": len(items)}))
}

// ByProduct godoc
// @Summary      Inventario de un producto en todas las tiendas
// @Tags         inventory
// @Produce      json
// @Param        productId  path  int  true  "Id de producto"
// @Success      200  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/inventory/products/{productId} [get]
func (h *InventoryHandler) ByProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	items, err := h.uc.ListProductInventory(c.Context(), productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("", fiber.Map{"inventory": items, "total": len(items)}))
}

// Availability godoc
// @Summary      Disponibilidad de un producto en una tienda
// @Tags         inventory
// @Produce      json
// @Param        storeId    path  int  true  "Id de tienda"
// @Param        productId  path  int  true  "Id de producto"
// @Success      200  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/inventory/availability/{storeId}/{productId} [get]
func (h *InventoryHandler) Availability(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("storeId")
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	productID, err := c.ParamsInt("productId")
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	avail, err := h.uc.CheckAvailability(c.Context(), storeID, productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("", dto.AvailabilityDTO{
		Available:       avail.Available,
		QuantityInStock: avail.QuantityInStock,
		StoreID:         storeID,
		ProductID:       productID,
	}))
}

// Update godoc
// @Summary      Ajustar existencias
// @Description  Aplica un delta con signo (positivo entrada, negativo salida) y registra la transacción.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        storeId    path  int                         true  "Id de tienda"
// @Param        productId  path  int                         true  "Id de producto"
// @Param        body       body  dto.UpdateInventoryRequest  true  "quantity (delta con signo), notes?"
// @Success      200  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/inventory/update/{storeId}/{productId} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("storeId")
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	productID, err := c.ParamsInt("productId")
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}

	newQty, err := h.uc.Adjust(c.Context(), inventory.AdjustInput{
		StoreID:   storeID,
		ProductID: productID,
		Delta:     in.Quantity,
		Notes:     in.Notes,
		CreatedBy: GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("inventario actualizado", dto.AdjustResultDTO{
		StoreID:         storeID,
		ProductID:       productID,
		QuantityInStock: newQty,
	}))
}

// Transactions godoc
// @Summary      Log de transacciones de una tienda
// @Tags         inventory
// @Produce      json
// @Param        storeId  path   int  true   "Id de tienda"
// @Param        limit    query  int  false  "Máximo de filas (100 por defecto)"
// @Success      200  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/inventory/transactions/{storeId} [get]
func (h *InventoryHandler) Transactions(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("storeId")
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	txs, err := h.uc.ListTransactions(c.Context(), storeID, c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("", fiber.Map{"transactions": txs, "total": len(txs)}))
}

// Transfer godoc
// @Summary      Transferir existencias entre tiendas
// @Description  Decrementa origen e incrementa destino en una sola transacción, con su par de registros Transfer.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "sourceStoreId, targetStoreId, productId, quantity"
// @Success      200  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/inventory/transfer [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Transfer(c.Context(), inventory.TransferInput{
		SourceStoreID: in.SourceStoreID,
		TargetStoreID: in.TargetStoreID,
		ProductID:     in.ProductID,
		Quantity:      in.Quantity,
		CreatedBy:     GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("transferencia completada", out))
}
