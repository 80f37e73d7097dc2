package payment

import (
	"context"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// Gateway creates hosted-payment sessions against the external provider.
type Gateway interface {
	CreateTransaction(ctx context.Context, orderID string, grossAmount int64, customer Customer, items []Item) (*Session, error)
}

type midtransGateway struct {
	client snap.Client
}

// NewMidtransGateway builds a snap client against the sandbox or production
// environment depending on the production flag.
func NewMidtransGateway(serverKey string, production bool) Gateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}

	g := &midtransGateway{}
	g.client.New(serverKey, env)
	return g
}

func (g *midtransGateway) CreateTransaction(_ context.Context, orderID string, grossAmount int64, customer Customer, items []Item) (*Session, error) {
	itemDetails := make([]midtrans.ItemDetails, 0, len(items))
	for _, item := range items {
		itemDetails = append(itemDetails, midtrans.ItemDetails{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price,
			Qty:   item.Qty,
		})
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customer.Name,
			Email: customer.Email,
			Phone: customer.Phone,
		},
		Items: &itemDetails,
	}

	resp, err := g.client.CreateTransaction(req)
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}
