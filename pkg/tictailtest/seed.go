package tictailtest

// Seed identifiers. They match the fixtures of the public sandbox store.
const (
	StoreID           = "KGu"
	StoreName         = "Tictail Python"
	ProductID         = "9cVh"
	ProductTitle      = "Tictail Python Test Product"
	CategoryID        = "47dv"
	CategoryTitle     = "Test Products"
	SubCategoryID     = "47dw"
	SubCategoryTitle  = "Nice Test Products"
	OrderID           = "aFQX"
	CustomerID        = "4EbF"
	CustomerEmail     = "BubGnome@mailinator.com"
	ThemeID           = "ueg"
	OrderModifiedAt   = "2014-05-10T23:07:49.674233"
	OrderCreatedAt    = "2014-05-10T23:05:12.112410"
	ProductCreatedAt  = "2014-05-01T00:47:16"
	ProductModifiedAt = "2014-05-02T10:12:00"
)

func seedStore() *storeData {
	product := object{
		"id":          ProductID,
		"title":       ProductTitle,
		"description": "A product used by client tests.",
		"price":       0,
		"currency":    "SEK",
		"status":      "published",
		"unlimited":   true,
		"categories": []interface{}{
			object{"id": CategoryID, "title": CategoryTitle},
		},
		"created_at":  ProductCreatedAt,
		"modified_at": ProductModifiedAt,
	}

	customer := object{
		"id":          CustomerID,
		"email":       CustomerEmail,
		"name":        "Bub Gnome",
		"country":     "SE",
		"language":    "en",
		"created_at":  "2014-05-10T23:05:12",
		"modified_at": "2014-05-10T23:05:12",
	}

	order := object{
		"id":       OrderID,
		"number":   1,
		"price":    0,
		"currency": "SEK",
		"customer": object{"id": CustomerID, "email": CustomerEmail},
		"transaction": object{
			"status":     "paid",
			"processor":  "free",
			"created_at": OrderCreatedAt,
		},
		"items": []interface{}{
			object{
				"quantity": 1,
				"price":    0,
				"product":  object{"id": ProductID, "title": ProductTitle},
			},
		},
		"created_at":  OrderCreatedAt,
		"modified_at": OrderModifiedAt,
	}

	return &storeData{
		store: object{
			"id":          StoreID,
			"name":        StoreName,
			"subdomain":   "tictailpython",
			"url":         "http://tictailpython.tictail.com",
			"currency":    "SEK",
			"country":     "SE",
			"language":    "en",
			"created_at":  "2014-05-01T00:40:00",
			"modified_at": "2014-05-01T00:40:00",
		},
		products:  []object{product},
		customers: []object{customer},
		orders:    []object{order},
		categories: []object{
			{
				"id":          CategoryID,
				"title":       CategoryTitle,
				"parent_id":   nil,
				"position":    0,
				"created_at":  "2014-05-01T00:45:00",
				"modified_at": "2014-05-01T00:45:00",
			},
			{
				"id":          SubCategoryID,
				"title":       SubCategoryTitle,
				"parent_id":   CategoryID,
				"position":    1,
				"created_at":  "2014-05-01T00:46:00",
				"modified_at": "2014-05-01T00:46:00",
			},
		},
		theme: object{
			"id":          ThemeID,
			"name":        "Default",
			"created_at":  "2014-05-01T00:40:00",
			"modified_at": "2014-05-01T00:40:00",
		},
	}
}
