package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hoangtm/restaurant-ordering/application/address"
	"github.com/hoangtm/restaurant-ordering/cmd/config"
	"github.com/hoangtm/restaurant-ordering/constant"
	"github.com/hoangtm/restaurant-ordering/model"
	cartrepo "github.com/hoangtm/restaurant-ordering/repository/cart"
	catalogrepo "github.com/hoangtm/restaurant-ordering/repository/catalog"
	orderrepo "github.com/hoangtm/restaurant-ordering/repository/order"
	seqrepo "github.com/hoangtm/restaurant-ordering/repository/sequence"
	txrepo "github.com/hoangtm/restaurant-ordering/repository/tx"
	"github.com/hoangtm/restaurant-ordering/thirdparty/rabbitmq"
	"github.com/hoangtm/restaurant-ordering/utils/errors"
	"github.com/hoangtm/restaurant-ordering/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error)
}

type orderAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	orderRepo   orderrepo.OrderRepository
	seqRepo     seqrepo.SequenceRepository
	catalogRepo catalogrepo.CatalogRepository
	cartRepo    cartrepo.CartRepository
	resolver    address.Resolver
	classifier  ItemClassifier
	publisher   *rabbitmq.Publisher
}

func NewOrderApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository,
	seqRepo seqrepo.SequenceRepository, catalogRepo catalogrepo.CatalogRepository, cartRepo cartrepo.CartRepository,
	resolver address.Resolver, classifier ItemClassifier, publisher *rabbitmq.Publisher) OrderApp {
	return &orderAppImpl{
		config:      config,
		txRepo:      txRepo,
		orderRepo:   orderRepo,
		seqRepo:     seqRepo,
		catalogRepo: catalogRepo,
		cartRepo:    cartRepo,
		resolver:    resolver,
		classifier:  classifier,
		publisher:   publisher,
	}
}

// CreateOrder validates and persists one order. Cheap checks run before
// external ones: user and items before address resolution, address before the
// sequence allocation and the transactional write. The post-commit cart clear
// and event publish are best-effort and never fail an already-committed
// order.
func (s *orderAppImpl) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	// The chatbot channel asserts the userId itself, so it must be proven to
	// exist before anything else happens.
	if req.UserID == "" {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrMissingField, "userId")
	}
	exists, err := s.catalogRepo.UserExists(ctx, req.UserID)
	if err != nil {
		logger.Error("[CreateOrder] user existence check", zap.String("user_id", req.UserID), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidReference,
			fmt.Sprintf("user %q not found", req.UserID))
	}

	rawItems, err := parseItems(req.Items)
	if err != nil {
		return nil, err
	}
	items := make([]model.LineItemRef, 0, len(rawItems))
	for i := range rawItems {
		item, err := s.classifier.Classify(ctx, &rawItems[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if len(items) == 0 {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrItemParse, "no valid items remain")
	}

	addr, err := s.resolveAddress(ctx, req)
	if err != nil {
		return nil, err
	}

	total := float64(req.Total)
	if total <= 0 {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "total must be a positive number")
	}

	seq, err := s.seqRepo.Next(ctx, constant.SequenceOrder)
	if err != nil {
		logger.Error("[CreateOrder] sequence allocation", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrSequenceAllocation)
	}
	now := time.Now()

	entity := &model.OrderEntity{
		ID:            uuid.NewString(),
		OrderNumber:   seq,
		OrderCode:     FormatOrderCode(seq, now),
		UserID:        req.UserID,
		Total:         total,
		Status:        constant.OrderStatusPending,
		PaymentStatus: constant.PaymentStatusUnpaid,
		Channel:       req.Channel,
		Note:          req.Note,
		Street:        req.Street,
		Address:       *addr,
		CreatedAt:     now,
	}

	if err := s.persistOrder(ctx, entity, items); err != nil {
		return nil, err
	}

	// Best effort from here on: the order is committed.
	if err := s.cartRepo.Clear(ctx, req.UserID); err != nil {
		logger.Error("[CreateOrder] cart clear", zap.String("user_id", req.UserID), zap.Error(err))
	}
	if s.publisher != nil {
		msg := rabbitmq.OrderCreatedMessage{
			OrderID:   entity.ID,
			OrderCode: entity.OrderCode,
			UserID:    entity.UserID,
			Total:     entity.Total,
			Channel:   entity.Channel,
			CreatedAt: entity.CreatedAt,
		}
		if err := s.publisher.PublishOrderCreated(msg); err != nil {
			logger.Error("[CreateOrder] publish order created", zap.String("order_code", entity.OrderCode), zap.Error(err))
		}
	}

	return &model.OrderResponse{
		OrderID:     entity.ID,
		OrderCode:   entity.OrderCode,
		OrderNumber: entity.OrderNumber,
		Total:       entity.Total,
		Status:      "pending",
		Items:       items,
		Address:     entity.Address,
		CreatedAt:   entity.CreatedAt,
	}, nil
}

// resolveAddress applies the per-channel address policy. The web channel
// requires a fully resolved triple. The chatbot channel frequently creates
// orders before address collection completes, so unresolved levels are filled
// with an explicit placeholder instead of failing the request.
func (s *orderAppImpl) resolveAddress(ctx context.Context, req *model.OrderRequest) (*model.AddressReference, error) {
	addr, err := s.resolver.Resolve(ctx, req.AddressInput())

	if req.Channel == constant.ChannelChatbot {
		if addr == nil {
			addr = &model.AddressReference{}
		}
		fillPending(addr)
		return addr, nil
	}

	if err != nil {
		return nil, err
	}
	if !addr.Complete() {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrAddressUnresolved,
			"unresolved levels: "+joinLevels(addr.MissingLevels()))
	}
	return addr, nil
}

func fillPending(addr *model.AddressReference) {
	if addr.ProvinceName == "" {
		addr.ProvinceName = constant.AddressPending
	}
	if addr.DistrictName == "" {
		addr.DistrictName = constant.AddressPending
	}
	if addr.WardName == "" {
		addr.WardName = constant.AddressPending
	}
}

func joinLevels(levels []string) string {
	out := ""
	for i, l := range levels {
		if i > 0 {
			out += ", "
		}
		out += l
	}
	return out
}

// persistOrder writes the header and all items as one transaction.
func (s *orderAppImpl) persistOrder(ctx context.Context, entity *model.OrderEntity, items []model.LineItemRef) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateOrder] begin tx", zap.Error(err))
		return errors.SetCustomError(constant.ErrPersistence)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.orderRepo.InsertOrderTx(ctx, tx, entity); err != nil {
		logger.Error("[CreateOrder] insert order", zap.String("order_code", entity.OrderCode), zap.Error(err))
		return errors.SetCustomError(constant.ErrPersistence)
	}
	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, entity.ID, items); err != nil {
		logger.Error("[CreateOrder] insert items", zap.String("order_code", entity.OrderCode), zap.Error(err))
		return errors.SetCustomError(constant.ErrPersistence)
	}
	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateOrder] commit tx", zap.String("order_code", entity.OrderCode), zap.Error(err))
		return errors.SetCustomError(constant.ErrPersistence)
	}
	committed = true
	return nil
}
