package constant

type OrderStatus int

const (
	OrderStatusPending   OrderStatus = 1
	OrderStatusConfirmed OrderStatus = 2
	OrderStatusCompleted OrderStatus = 3
	OrderStatusCanceled  OrderStatus = 4
)

type PaymentStatus int

const (
	PaymentStatusUnpaid   PaymentStatus = 1
	PaymentStatusPaid     PaymentStatus = 2
	PaymentStatusRefunded PaymentStatus = 3
)

// Order channels. The chatbot channel is authenticated by a shared secret and
// supplies looser input than the web channel.
const (
	ChannelWeb     = "web"
	ChannelChatbot = "chatbot"
)

// Named counters backing human-readable entity codes.
const (
	SequenceOrder    = "order"
	SequenceUser     = "user"
	SequenceCategory = "category"
)

const OrderCodePrefix = "ORD"

// AddressPending marks address levels the chatbot channel could not resolve
// at order time; the order proceeds and the field is filled in later.
const AddressPending = "Chưa cập nhật"
