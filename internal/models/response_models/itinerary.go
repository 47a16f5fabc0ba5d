package response_models

// Canonical itinerary shape. Every field is optional: the model may omit
// anything, and older saved trips may carry only a subset. Rendering treats
// prices, times and ratings as opaque display strings.

type Hotel struct {
	Name          string   `json:"hotelName,omitempty" bson:"hotelName,omitempty"`
	Address       string   `json:"address,omitempty" bson:"address,omitempty"`
	PricePerNight string   `json:"pricePerNight,omitempty" bson:"pricePerNight,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	StarRating    string   `json:"starRating,omitempty" bson:"starRating,omitempty"`
	Amenities     []string `json:"amenities,omitempty" bson:"amenities,omitempty"`
	ReviewSummary string   `json:"reviewSummary,omitempty" bson:"reviewSummary,omitempty"`
}

type PlaceVisit struct {
	PlaceName       string `json:"placeName,omitempty" bson:"placeName,omitempty"`
	Description     string `json:"description,omitempty" bson:"description,omitempty"`
	PlaceType       string `json:"placeType,omitempty" bson:"placeType,omitempty"`
	EntryPrice      string `json:"entryPrice,omitempty" bson:"entryPrice,omitempty"`
	OpeningTime     string `json:"openingTime,omitempty" bson:"openingTime,omitempty"`
	ClosingTime     string `json:"closingTime,omitempty" bson:"closingTime,omitempty"`
	Rating          string `json:"rating,omitempty" bson:"rating,omitempty"`
	BestTimeToVisit string `json:"bestTimeToVisit,omitempty" bson:"bestTimeToVisit,omitempty"`
}

type DiningOption struct {
	Name       string `json:"name,omitempty" bson:"name,omitempty"`
	Cuisine    string `json:"cuisine,omitempty" bson:"cuisine,omitempty"`
	PriceRange string `json:"priceRange,omitempty" bson:"priceRange,omitempty"`
}

type DayPlan struct {
	Day    int            `json:"day" bson:"day"`
	Places []PlaceVisit   `json:"places,omitempty" bson:"places,omitempty"`
	Dining []DiningOption `json:"dining,omitempty" bson:"dining,omitempty"`
	// Unexpected marks days beyond the requested trip duration. They are
	// kept and rendered, not dropped.
	Unexpected bool `json:"unexpected,omitempty" bson:"unexpected,omitempty"`
}

type Transport struct {
	LocalOptions       []string `json:"localOptions,omitempty" bson:"localOptions,omitempty"`
	EstimatedDailyCost string   `json:"estimatedDailyCost,omitempty" bson:"estimatedDailyCost,omitempty"`
	AirportTransfer    string   `json:"airportTransfer,omitempty" bson:"airportTransfer,omitempty"`
}

type Weather struct {
	PerDayForecast     []string `json:"perDayForecast,omitempty" bson:"perDayForecast,omitempty"`
	AverageTemperature string   `json:"averageTemperature,omitempty" bson:"averageTemperature,omitempty"`
	ItemsToCarry       []string `json:"itemsToCarry,omitempty" bson:"itemsToCarry,omitempty"`
}

type Safety struct {
	Precautions      []string `json:"precautions,omitempty" bson:"precautions,omitempty"`
	EmergencyNumbers []string `json:"emergencyNumbers,omitempty" bson:"emergencyNumbers,omitempty"`
	SafeHours        string   `json:"safeHours,omitempty" bson:"safeHours,omitempty"`
}

type Itinerary struct {
	Hotels    []Hotel   `json:"hotels,omitempty" bson:"hotels,omitempty"`
	Days      []DayPlan `json:"days,omitempty" bson:"days,omitempty"`
	Transport Transport `json:"transport,omitempty" bson:"transport,omitempty"`
	Weather   Weather   `json:"weather,omitempty" bson:"weather,omitempty"`
	Safety    Safety    `json:"safety,omitempty" bson:"safety,omitempty"`

	// Set when generation failed and this itinerary is the placeholder the
	// UI renders instead of an error screen. RawExcerpt keeps the first few
	// hundred characters of the model response for operator diagnosis.
	GenerationFailed bool   `json:"generationFailed,omitempty" bson:"generationFailed,omitempty"`
	FailureMessage   string `json:"failureMessage,omitempty" bson:"failureMessage,omitempty"`
	RawExcerpt       string `json:"rawExcerpt,omitempty" bson:"rawExcerpt,omitempty"`
}
