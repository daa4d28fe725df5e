package order

import (
	"context"
	"fmt"
	"math"

	"github.com/hoangtm/restaurant-ordering/constant"
	"github.com/hoangtm/restaurant-ordering/model"
	catalogrepo "github.com/hoangtm/restaurant-ordering/repository/catalog"
	"github.com/hoangtm/restaurant-ordering/utils/errors"
	"github.com/hoangtm/restaurant-ordering/utils/logger"
	"go.uber.org/zap"
)

// ItemClassifier normalizes the heterogeneous line-item shapes the chatbot
// channel produces into a strict product-xor-combo reference and verifies the
// referenced entity exists.
type ItemClassifier interface {
	Classify(ctx context.Context, raw *model.RawLineItem) (*model.LineItemRef, error)
}

type classifierImpl struct {
	catalogRepo catalogrepo.CatalogRepository
}

func NewItemClassifier(catalogRepo catalogrepo.CatalogRepository) ItemClassifier {
	return &classifierImpl{catalogRepo: catalogRepo}
}

// Classify routes the reference first (explicit productId/comboId fields win,
// then the type field, then product by default), validates quantity and
// price, then checks existence. An item carrying both productId and comboId
// is rejected outright: that is a caller bug, not an ambiguity to resolve
// silently.
func (c *classifierImpl) Classify(ctx context.Context, raw *model.RawLineItem) (*model.LineItemRef, error) {
	productID := raw.ProductID.String()
	comboID := raw.ComboID.String()

	if productID != "" && comboID != "" {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrItemParse,
			fmt.Sprintf("item carries both productId %q and comboId %q", productID, comboID))
	}

	if productID == "" && comboID == "" {
		id := raw.ID.String()
		if id == "" {
			return nil, errors.SetCustomErrorWithDetail(constant.ErrItemParse,
				"item carries no product or combo reference")
		}
		switch raw.Type {
		case "combo":
			comboID = id
		case "product", "":
			// Untyped ids default to product.
			productID = id
		default:
			return nil, errors.SetCustomErrorWithDetail(constant.ErrItemParse,
				fmt.Sprintf("unknown item type %q for id %q", raw.Type, id))
		}
	}

	quantity, err := coerceQuantity(float64(raw.Quantity))
	if err != nil {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrItemParse,
			fmt.Sprintf("item %s: %s", refID(productID, comboID), err.Error()))
	}

	price := float64(raw.Price)
	if price < 0 {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrItemParse,
			fmt.Sprintf("item %s: price must be non-negative", refID(productID, comboID)))
	}

	if err := c.checkExists(ctx, productID, comboID); err != nil {
		return nil, err
	}

	return &model.LineItemRef{
		ProductID: productID,
		ComboID:   comboID,
		Quantity:  quantity,
		Price:     price,
	}, nil
}

func (c *classifierImpl) checkExists(ctx context.Context, productID, comboID string) error {
	if comboID != "" {
		exists, err := c.catalogRepo.ComboExists(ctx, comboID)
		if err != nil {
			logger.Error("[Classify] combo existence check", zap.String("combo_id", comboID), zap.Error(err))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if !exists {
			return errors.SetCustomErrorWithDetail(constant.ErrInvalidReference,
				fmt.Sprintf("combo %q not found", comboID))
		}
		return nil
	}

	exists, err := c.catalogRepo.ProductExists(ctx, productID)
	if err != nil {
		logger.Error("[Classify] product existence check", zap.String("product_id", productID), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return errors.SetCustomErrorWithDetail(constant.ErrInvalidReference,
			fmt.Sprintf("product %q not found", productID))
	}
	return nil
}

func coerceQuantity(v float64) (int, error) {
	if v <= 0 {
		return 0, fmt.Errorf("quantity must be a positive integer")
	}
	if v != math.Trunc(v) || v > math.MaxInt32 {
		return 0, fmt.Errorf("quantity must be a positive integer")
	}
	return int(v), nil
}

func refID(productID, comboID string) string {
	if comboID != "" {
		return "combo " + comboID
	}
	return "product " + productID
}
