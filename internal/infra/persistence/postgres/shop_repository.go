package postgres

import (
	"context"
	"strconv"

	"shopscore/internal/domain/entity"
	domainerrors "shopscore/internal/domain/errors"
	"shopscore/internal/domain/repository"
	"shopscore/internal/domain/service"
	"shopscore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shopRepository implements the domain.ShopRepository interface.
type shopRepository struct {
	db    *gorm.DB
	clock service.Clock
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB, clock service.Clock) repository.ShopRepository {
	return &shopRepository{
		db:    db,
		clock: clock,
	}
}

// Create inserts the shop and derives "shop_<seq>" from the generated sequence in one transaction.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shop.CreatedAt = repo.clock.Now()
	shopM := fromShopDomain(shop)
	shopM.ID = "pending_" + uuid.NewString()

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(shopM).Error; err != nil {
			return err
		}

		shopM.ID = "shop_" + strconv.FormatInt(shopM.Seq, 10)

		return tx.Model(shopM).Update("id", shopM.ID).Error
	})
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required shop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.ID = shopM.ID

	return nil
}

// FindByID resolves a shop by identifier.
func (repo *shopRepository) FindByID(ctx context.Context, id string) (*entity.Shop, error) {
	var shopM model.ShopModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	return toShopDomain(&shopM), nil
}

// List returns every shop in registration order.
func (repo *shopRepository) List(ctx context.Context) ([]*entity.Shop, error) {
	var shopModels []*model.ShopModel
	if err := repo.db.WithContext(ctx).Order("seq ASC").Find(&shopModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	shops := make([]*entity.Shop, 0, len(shopModels))
	for _, shopM := range shopModels {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops, nil
}

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:         data.ID,
		Name:       data.Name,
		Location:   data.Location,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		FoodType:   data.FoodType,
		Contact:    data.Contact,
		OwnerEmail: data.OwnerEmail,
		CreatedAt:  data.CreatedAt,
	}
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:         data.ID,
		Name:       data.Name,
		Location:   data.Location,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		FoodType:   data.FoodType,
		Contact:    data.Contact,
		OwnerEmail: data.OwnerEmail,
		CreatedAt:  data.CreatedAt,
	}
}
