package services

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"

	resp "tripwise/internal/models/response_models"
)

// The itinerary sections have moved between top-level keys over time: the
// generation endpoint emits them directly, the chat endpoint wraps them in a
// travelPlan envelope, and the oldest saved trips carry a doubly-nested
// envelope. Each section therefore resolves through an ordered candidate
// path list; the first path holding a non-empty value wins. All five
// sections go through the same resolver — the table is the only thing that
// differs per section.
var sectionPaths = map[string][]string{
	"hotels":    {"hotelsList", "hotels", "travelPlan.hotelsList", "travelPlan.hotels", "travelPlan.travelPlan.hotels"},
	"days":      {"itinerary", "dailyItinerary", "days", "travelPlan.itinerary", "travelPlan.dailyItinerary", "travelPlan.travelPlan.itinerary"},
	"transport": {"transportation", "localTransport", "transport", "travelPlan.transportation", "travelPlan.localTransport", "travelPlan.travelPlan.transportation"},
	"weather":   {"weather", "weatherInfo", "travelPlan.weather", "travelPlan.weatherInfo", "travelPlan.travelPlan.weather"},
	"safety":    {"safety", "safetyTips", "travelPlan.safety", "travelPlan.safetyTips", "travelPlan.travelPlan.safety"},
}

var dayKeyRe = regexp.MustCompile(`^day(\d+)$`)

// NormalizeItinerary converts the loosely-typed object from extraction (or
// from an older stored trip) into the canonical shape. It never fails:
// every missing or malformed section degrades to its empty value.
// durationDays is only used to flag surplus days; a short itinerary is kept
// short.
func NormalizeItinerary(obj map[string]interface{}, durationDays int) resp.Itinerary {
	var out resp.Itinerary
	if obj == nil {
		return out
	}

	if v := resolveFirstNonEmpty(obj, sectionPaths["hotels"]); v != nil {
		out.Hotels = normalizeHotels(v)
	}
	if v := resolveFirstNonEmpty(obj, sectionPaths["days"]); v != nil {
		out.Days = reconcileDays(v)
	}
	if v := resolveFirstNonEmpty(obj, sectionPaths["transport"]); v != nil {
		decodeSection(v, &out.Transport)
	}
	if v := resolveFirstNonEmpty(obj, sectionPaths["weather"]); v != nil {
		decodeSection(v, &out.Weather)
	}
	if v := resolveFirstNonEmpty(obj, sectionPaths["safety"]); v != nil {
		decodeSection(v, &out.Safety)
	}

	if durationDays > 0 {
		for i := range out.Days {
			if out.Days[i].Day > durationDays {
				out.Days[i].Unexpected = true
			}
		}
	}

	return out
}

// resolveFirstNonEmpty walks each dot-separated candidate path through
// nested objects and returns the first non-empty value.
func resolveFirstNonEmpty(obj map[string]interface{}, paths []string) interface{} {
	for _, path := range paths {
		cur := interface{}(obj)
		for _, key := range strings.Split(path, ".") {
			m, ok := cur.(map[string]interface{})
			if !ok {
				cur = nil
				break
			}
			cur = m[key]
		}
		if !isEmptyValue(cur) {
			return cur
		}
	}
	return nil
}

func isEmptyValue(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []interface{}:
		return len(t) == 0
	case map[string]interface{}:
		return len(t) == 0
	}
	return false
}

// reconcileDays accepts either day shape:
//
//	array: [{"day":1,"places":[...]}, ...]           already canonical
//	map:   {"day1":[...], "day2":[...]}              keyed by day<N>
//
// An array only counts as canonical when its first element carries a numeric
// day and a places sequence; map keys that don't match day<N> are dropped;
// anything else normalizes to no days at all.
func reconcileDays(v interface{}) []resp.DayPlan {
	switch days := v.(type) {
	case []interface{}:
		if len(days) == 0 {
			return nil
		}
		first, ok := days[0].(map[string]interface{})
		if !ok || !hasNumericDay(first) || !hasPlacesSeq(first) {
			return nil
		}
		out := make([]resp.DayPlan, 0, len(days))
		for _, d := range days {
			m, ok := d.(map[string]interface{})
			if !ok {
				continue
			}
			out = append(out, decodeDay(m))
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].Day < out[j].Day })
		return out

	case map[string]interface{}:
		out := make([]resp.DayPlan, 0, len(days))
		for key, val := range days {
			m := dayKeyRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(key)))
			if m == nil {
				continue
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			day := resp.DayPlan{Day: n}
			if seq, ok := val.([]interface{}); ok {
				day.Places = decodePlaces(seq)
			} else if obj, ok := val.(map[string]interface{}); ok {
				// Some responses nest {"places": [...], "dining": [...]}
				// under the day key instead of a bare place list.
				day = decodeDay(obj)
				day.Day = n
			}
			out = append(out, day)
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].Day < out[j].Day })
		return out
	}
	return nil
}

func hasNumericDay(m map[string]interface{}) bool {
	_, ok := m["day"].(float64)
	return ok
}

func hasPlacesSeq(m map[string]interface{}) bool {
	for _, key := range []string{"places", "plan", "activities"} {
		if _, ok := m[key].([]interface{}); ok {
			return true
		}
	}
	return false
}

func decodeDay(m map[string]interface{}) resp.DayPlan {
	var day resp.DayPlan
	if n, ok := m["day"].(float64); ok {
		day.Day = int(n)
	}
	for _, key := range []string{"places", "plan", "activities"} {
		if seq, ok := m[key].([]interface{}); ok {
			day.Places = decodePlaces(seq)
			break
		}
	}
	for _, key := range []string{"dining", "restaurants", "food"} {
		if seq, ok := m[key].([]interface{}); ok {
			day.Dining = decodeDining(seq)
			break
		}
	}
	return day
}

func decodePlaces(seq []interface{}) []resp.PlaceVisit {
	out := make([]resp.PlaceVisit, 0, len(seq))
	for _, item := range seq {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, resp.PlaceVisit{
			PlaceName:       strAt(m, "placeName", "place_name", "name"),
			Description:     strAt(m, "description", "placeDetails", "details"),
			PlaceType:       strAt(m, "placeType", "type", "category"),
			EntryPrice:      strAt(m, "entryPrice", "ticketPricing", "price"),
			OpeningTime:     strAt(m, "openingTime", "opening_time", "opensAt"),
			ClosingTime:     strAt(m, "closingTime", "closing_time", "closesAt"),
			Rating:          strAt(m, "rating", "placeRating"),
			BestTimeToVisit: strAt(m, "bestTimeToVisit", "best_time_to_visit", "bestTime"),
		})
	}
	return out
}

func decodeDining(seq []interface{}) []resp.DiningOption {
	out := make([]resp.DiningOption, 0, len(seq))
	for _, item := range seq {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, resp.DiningOption{
			Name:       strAt(m, "name", "restaurantName"),
			Cuisine:    strAt(m, "cuisine", "cuisineType"),
			PriceRange: strAt(m, "priceRange", "price"),
		})
	}
	// At most two dining recommendations per day are rendered.
	if len(out) > 2 {
		out = out[:2]
	}
	return out
}

func normalizeHotels(v interface{}) []resp.Hotel {
	seq, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]resp.Hotel, 0, len(seq))
	for _, item := range seq {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, resp.Hotel{
			Name:          strAt(m, "hotelName", "hotel_name", "name"),
			Address:       strAt(m, "address", "hotelAddress"),
			PricePerNight: strAt(m, "pricePerNight", "price_per_night", "price"),
			ImageURL:      strAt(m, "imageUrl", "hotelImageUrl", "image_url"),
			StarRating:    strAt(m, "starRating", "rating", "stars"),
			Amenities:     strSliceAt(m, "amenities"),
			ReviewSummary: strAt(m, "reviewSummary", "reviews", "description"),
		})
	}
	return out
}

// decodeSection maps a loosely-typed object onto a typed section via a JSON
// round trip; any field the shape disagrees on is simply left empty.
func decodeSection(v interface{}, dst interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, dst)
}

// strAt returns the first candidate key holding a renderable value. Numbers
// are kept as display strings; ratings and prices are opaque here.
func strAt(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		switch t := m[k].(type) {
		case string:
			if t != "" {
				return t
			}
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(t)
		}
	}
	return ""
}

func strSliceAt(m map[string]interface{}, key string) []string {
	seq, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(seq))
	for _, item := range seq {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
