package order

import (
	"context"

	"github.com/hoangtm/restaurant-ordering/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.OrderEntity) error
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID string, items []model.LineItemRef) error
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const insertOrderQuery = `INSERT INTO ` + "`order`" + ` (id, order_number, order_code, user_id, total, status, payment_status, channel, note, street,
	province_code, province_name, district_code, district_name, ward_code, ward_name, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.OrderEntity) error {
	_, err := tx.ExecContext(ctx, insertOrderQuery,
		order.ID, order.OrderNumber, order.OrderCode, order.UserID, order.Total,
		order.Status, order.PaymentStatus, order.Channel, order.Note, order.Street,
		order.Address.ProvinceCode, order.Address.ProvinceName,
		order.Address.DistrictCode, order.Address.DistrictName,
		order.Address.WardCode, order.Address.WardName,
	)
	return err
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID string, items []model.LineItemRef) error {
	q := "INSERT INTO order_item (order_id, product_id, combo_id, quantity, price) VALUES (?, NULLIF(?, ''), NULLIF(?, ''), ?, ?)"
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, q, orderID, it.ProductID, it.ComboID, it.Quantity, it.Price); err != nil {
			return err
		}
	}
	return nil
}
