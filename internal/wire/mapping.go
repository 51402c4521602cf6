package wire

import (
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/marketplace-connector/internal/entities"
)

func PriceFromMoney(m entities.Money) Price {
	return Price{Amount: m.FormatAmount(), Currency: m.Currency}
}

func PriceToMoney(p Price) (entities.Money, error) {
	return entities.ParseMoney(p.Amount, p.Currency)
}

func ListingRequestFromCommand(cmd entities.ListingCommand) ListingRequest {
	var media []Media
	for _, url := range cmd.Media {
		media = append(media, Media{URL: url})
	}
	return ListingRequest{
		Platform:        cmd.Platform,
		SellerAccountID: cmd.SellerAccountID,
		SKU:             cmd.SKU,
		Title:           cmd.Title,
		Description:     cmd.Description,
		Price:           PriceFromMoney(cmd.Price),
		Quantity:        cmd.Quantity,
		Media:           media,
	}
}

// ListingRequestToCommand строит нормализованную команду из тела запроса.
func ListingRequestToCommand(req ListingRequest) (entities.ListingCommand, error) {
	price, err := PriceToMoney(req.Price)
	if err != nil {
		return entities.ListingCommand{}, err
	}
	media := make([]string, 0, len(req.Media))
	for _, m := range req.Media {
		media = append(media, m.URL)
	}
	return entities.NewListingCommand(req.Platform, req.SellerAccountID, req.SKU, req.Title, req.Description, price, req.Quantity, media)
}

func OrderRequestToCommand(req OrderRequest) (entities.OrderCommand, error) {
	items := make([]entities.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		price, err := PriceToMoney(it.Price)
		if err != nil {
			return entities.OrderCommand{}, err
		}
		item, err := entities.NewOrderItem(it.SKU, it.Quantity, price)
		if err != nil {
			return entities.OrderCommand{}, err
		}
		items = append(items, item)
	}

	var buyer *entities.Buyer
	if req.Buyer != nil {
		a := req.Buyer.Address
		address, err := entities.NewAddress(a.Line1, a.City, a.Region, a.Postal, a.Country)
		if err != nil {
			return entities.OrderCommand{}, err
		}
		b, err := entities.NewBuyer(req.Buyer.Name, address)
		if err != nil {
			return entities.OrderCommand{}, err
		}
		buyer = &b
	}

	return entities.NewOrderCommand(req.Platform, req.SellerAccountID, req.ListingID, req.SKU, buyer, items, req.IdempotencyKey)
}

func OrderRequestFromCommand(cmd entities.OrderCommand) OrderRequest {
	items := make([]OrderItem, 0, len(cmd.Items))
	for _, it := range cmd.Items {
		items = append(items, OrderItem{SKU: it.SKU, Quantity: it.Quantity, Price: PriceFromMoney(it.Price)})
	}

	var buyer *Buyer
	if cmd.Buyer != nil {
		buyer = &Buyer{
			Name: cmd.Buyer.Name,
			Address: Address{
				Line1:   cmd.Buyer.Address.Line1,
				City:    cmd.Buyer.Address.City,
				Region:  cmd.Buyer.Address.Region,
				Postal:  cmd.Buyer.Address.Postal,
				Country: cmd.Buyer.Address.Country,
			},
		}
	}

	return OrderRequest{
		Platform:        cmd.Platform,
		SellerAccountID: cmd.SellerAccountID,
		ListingID:       cmd.ListingID,
		SKU:             cmd.SKU,
		Buyer:           buyer,
		Items:           items,
		IdempotencyKey:  cmd.IdempotencyKey,
	}
}

func ErrorDetailsFromEntities(errs []entities.MarketplaceError) []ErrorDetail {
	if len(errs) == 0 {
		return nil
	}
	out := make([]ErrorDetail, 0, len(errs))
	for _, e := range errs {
		out = append(out, ErrorDetail{
			Code:              e.Code,
			Message:           e.Message,
			Details:           e.Details,
			RetryAfterSeconds: int(e.RetryAfter / time.Second),
		})
	}
	return out
}

func ErrorDetailsToEntities(details []ErrorDetail) []entities.MarketplaceError {
	if len(details) == 0 {
		return nil
	}
	out := make([]entities.MarketplaceError, 0, len(details))
	for _, d := range details {
		out = append(out, entities.MarketplaceError{
			Code:       d.Code,
			Message:    d.Message,
			Details:    d.Details,
			RetryAfter: time.Duration(d.RetryAfterSeconds) * time.Second,
		})
	}
	return out
}

func ListingResponseFromResult(res entities.ListingResult) ListingResponse {
	return ListingResponse{
		ListingID:  res.ListingID,
		ExternalID: res.ExternalID,
		Status:     string(res.Status),
		Errors:     ErrorDetailsFromEntities(res.Errors),
	}
}

func ListingResponseToResult(resp ListingResponse) (entities.ListingResult, error) {
	status, err := entities.ParseListingStatus(resp.Status)
	if err != nil {
		return entities.ListingResult{}, fmt.Errorf("invalid listing response: %w", err)
	}
	return entities.ListingResult{
		ListingID:  resp.ListingID,
		ExternalID: resp.ExternalID,
		Status:     status,
		Errors:     ErrorDetailsToEntities(resp.Errors),
	}, nil
}

func OrderResponseFromResult(res entities.OrderResult) OrderResponse {
	return OrderResponse{
		OrderID:    res.OrderID,
		ExternalID: res.ExternalID,
		Status:     string(res.Status),
		Errors:     ErrorDetailsFromEntities(res.Errors),
	}
}

func OrderResponseToResult(resp OrderResponse) (entities.OrderResult, error) {
	status, err := entities.ParseOrderStatus(resp.Status)
	if err != nil {
		return entities.OrderResult{}, fmt.Errorf("invalid order response: %w", err)
	}
	return entities.OrderResult{
		OrderID:    resp.OrderID,
		ExternalID: resp.ExternalID,
		Status:     status,
		Errors:     ErrorDetailsToEntities(resp.Errors),
	}, nil
}
