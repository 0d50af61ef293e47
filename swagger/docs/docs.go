// Package docs declares the request and response shapes the swagger spec is
// generated from. Regenerating writes swagger/swagger.yaml, which the engine
// serves at /swagger.yaml for the redoc page.
//
//go:generate swagger generate spec --scan-models -w ../.. -o ../swagger.yaml
package docs

import "github.com/Akash4693/TradeX-backend/pkg/model"

// swagger:parameters findEventById deleteEvent findProductById deleteProduct findShopById
type IdParam struct {
	// in: path
	// required: true
	ID uint `json:"id"`
}

// swagger:parameters findEventsByShop findProductsByShop
type ShopIdParam struct {
	// in: path
	// required: true
	ID uint `json:"id"`
}

// swagger:response
type Error struct {
	// The error message
	//in: body
	Message string
}

// swagger:response EventResponse
type EventResponse struct {
	//in: body
	Body struct {
		Success bool        `json:"success"`
		Event   model.Event `json:"event"`
	}
}

// swagger:response EventsResponse
type EventsResponse struct {
	//in: body
	Body struct {
		Success bool          `json:"success"`
		Events  []model.Event `json:"events"`
	}
}

// swagger:response ProductResponse
type ProductResponse struct {
	//in: body
	Body struct {
		Success bool          `json:"success"`
		Product model.Product `json:"product"`
	}
}

// swagger:response ProductsResponse
type ProductsResponse struct {
	//in: body
	Body struct {
		Success  bool            `json:"success"`
		Products []model.Product `json:"products"`
	}
}

// swagger:response ShopResponse
type ShopResponse struct {
	//in: body
	Body struct {
		Success bool       `json:"success"`
		Shop    model.Shop `json:"shop"`
	}
}

// swagger:response MessageResponse
type MessageResponse struct {
	//in: body
	Body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
}

// swagger:response Health
type Health struct {
	//in: body
	Body struct {
		Status string `json:"status"`
	}
}
