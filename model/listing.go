package model

// Etsy API v3 wire shapes. Listings are transient: they are mapped onto
// Product rows during a pull and never persisted as-is.

type Listing struct {
	ListingID        int64          `json:"listing_id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Price            ListingPrice   `json:"price"`
	Quantity         int            `json:"quantity"`
	State            string         `json:"state"`
	URL              string         `json:"url"`
	Images           []ListingImage `json:"images"`
	CreatedTimestamp int64          `json:"created_timestamp"`
	UpdatedTimestamp int64          `json:"updated_timestamp"`
}

// ListingPrice is Etsy's fixed-point representation; the local decimal
// price is amount/divisor.
type ListingPrice struct {
	Amount       int64  `json:"amount"`
	Divisor      int64  `json:"divisor"`
	CurrencyCode string `json:"currency_code"`
}

type ListingImage struct {
	ListingID      int64  `json:"listing_id"`
	ListingImageID int64  `json:"listing_image_id"`
	URLFullxfull   string `json:"url_fullxfull"`
	Rank           int    `json:"rank"`
}

// ListingUpdate is a partial field update; nil fields are omitted from the
// request entirely. Sending an empty string would clear the field on Etsy,
// so callers must never forward unset values.
type ListingUpdate struct {
	Title       *string
	Description *string
	Price       *float64
}

// ListingInventory mirrors the inventory structure returned by Etsy. The
// sub-products are kept as loose maps so that offering dimensions this
// service knows nothing about survive the read-modify-write round trip.
type ListingInventory struct {
	Products []map[string]interface{} `json:"products"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type TokenExchangeRequest struct {
	Code        string `json:"code" validate:"required"`
	Verifier    string `json:"verifier" validate:"required"`
	RedirectURI string `json:"redirect_uri" validate:"required"`
}

type Credentials struct {
	AccessToken string
	ShopID      string
	APIKey      string
}
