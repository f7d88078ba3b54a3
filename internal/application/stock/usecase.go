package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/grifosol/grifo-api/internal/application/dto"
	"github.com/grifosol/grifo-api/internal/domain"
	"github.com/grifosol/grifo-api/internal/domain/entity"
	"github.com/grifosol/grifo-api/internal/domain/repository"
)

// UseCase registra movimientos de stock de tanques de forma transaccional,
// con bloqueo de la fila del tanque (SELECT FOR UPDATE) durante la secuencia
// validar-luego-actualizar.
type UseCase struct {
	txRunner           TxRunner
	tankRepo           repository.TankRepository
	productRepo        repository.ProductRepository
	userRepo           repository.UserRepository
	saleDetailRepo     repository.SaleDetailRepository
	deliveryDetailRepo repository.DeliveryDetailRepository
	movementRepo       repository.StockMovementRepository
	now                func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	tankRepo repository.TankRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	saleDetailRepo repository.SaleDetailRepository,
	deliveryDetailRepo repository.DeliveryDetailRepository,
	movementRepo repository.StockMovementRepository,
) *UseCase {
	return &UseCase{
		txRunner:           txRunner,
		tankRepo:           tankRepo,
		productRepo:        productRepo,
		userRepo:           userRepo,
		saleDetailRepo:     saleDetailRepo,
		deliveryDetailRepo: deliveryDetailRepo,
		movementRepo:       movementRepo,
		now:                time.Now,
	}
}

// PostMovement valida referencias e invariantes del tanque y persiste el
// asiento junto con el nuevo nivel de stock en una sola transacción.
// Entrada: current + qty <= capacidad. Salida: qty <= current.
func (uc *UseCase) PostMovement(ctx context.Context, in dto.CreateStockMovementRequest) (*entity.StockMovement, error) {
	if !entity.IsInboundMovement(in.MovementType) && !entity.IsOutboundMovement(in.MovementType) {
		return nil, domain.ErrInvalidInput
	}
	qty := in.Quantity
	if qty.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	// La precisión del libro es de 3 decimales exactos.
	if !qty.Equal(qty.Round(3)) {
		return nil, domain.ErrInvalidInput
	}

	movementTS := uc.now()
	if in.MovementTimestamp != "" {
		parsed, err := time.Parse(time.RFC3339, in.MovementTimestamp)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		movementTS = parsed
	}

	// Validación de referencias (solo lectura, fuera de la tx).
	if tank, err := uc.tankRepo.GetByID(in.TankID); err != nil {
		return nil, err
	} else if tank == nil {
		return nil, fmt.Errorf("%w: el tanque especificado no existe", domain.ErrNotFound)
	}
	if product, err := uc.productRepo.GetByID(in.ProductID); err != nil {
		return nil, err
	} else if product == nil {
		return nil, fmt.Errorf("%w: el producto especificado no existe", domain.ErrNotFound)
	}
	if user, err := uc.userRepo.GetByID(in.UserID); err != nil {
		return nil, err
	} else if user == nil {
		return nil, fmt.Errorf("%w: el usuario especificado no existe", domain.ErrNotFound)
	}
	if in.SaleDetailID != nil {
		ok, err := uc.saleDetailRepo.Exists(*in.SaleDetailID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: el detalle de venta especificado no existe", domain.ErrNotFound)
		}
	}
	if in.DeliveryDetailID != nil {
		ok, err := uc.deliveryDetailRepo.Exists(*in.DeliveryDetailID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: el detalle de entrega especificado no existe", domain.ErrNotFound)
		}
	}

	var movement *entity.StockMovement
	err := uc.txRunner.RunStock(ctx, func(
		movementRepo repository.StockMovementRepository,
		tankRepo repository.TankRepository,
	) error {
		// Relee el tanque bajo bloqueo: dos movimientos concurrentes no deben
		// validar contra un stock obsoleto.
		tank, err := tankRepo.GetForUpdate(in.TankID)
		if err != nil {
			return err
		}
		if tank == nil {
			return fmt.Errorf("%w: el tanque especificado no existe", domain.ErrNotFound)
		}

		if entity.IsOutboundMovement(in.MovementType) && qty.GreaterThan(tank.CurrentStock) {
			return domain.ErrInsufficientStock
		}
		if entity.IsInboundMovement(in.MovementType) && tank.CurrentStock.Add(qty).GreaterThan(tank.TotalCapacity) {
			return domain.ErrCapacityExceeded
		}

		movement = &entity.StockMovement{
			ProductID:         in.ProductID,
			TankID:            in.TankID,
			UserID:            in.UserID,
			MovementTimestamp: movementTS,
			MovementType:      in.MovementType,
			Quantity:          qty,
			SaleDetailID:      in.SaleDetailID,
			DeliveryDetailID:  in.DeliveryDetailID,
			Description:       in.Description,
		}
		if err := movementRepo.Create(movement); err != nil {
			return err
		}

		if entity.IsInboundMovement(in.MovementType) {
			tank.CurrentStock = tank.CurrentStock.Add(qty)
		} else {
			tank.CurrentStock = tank.CurrentStock.Sub(qty)
		}
		tank.UpdatedAt = uc.now()
		return tankRepo.UpdateStock(tank)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// ListByTank lista los asientos de un tanque, más reciente primero.
func (uc *UseCase) ListByTank(ctx context.Context, tankID int64, limit, offset int) ([]*entity.StockMovement, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.movementRepo.ListByTank(tankID, limit, offset)
}
