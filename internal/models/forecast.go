package models

// TimeSeriesEntry is one point in a forecast timeseries. Time is kept as the
// upstream ISO-8601 string ("2024-03-15T16:00:00Z").
type TimeSeriesEntry[T any] struct {
	Time string `json:"time"`
	Data T      `json:"data"`
}

type WeatherDetails struct {
	AirTemperature      float64  `json:"air_temperature"`
	WindSpeed           float64  `json:"wind_speed"`
	SymbolCode          string   `json:"symbol_code,omitempty"`
	PrecipitationAmount *float64 `json:"precipitation_amount,omitempty"`
}

// OceanDetails holds sea readings. The ocean model leaves cells near land
// empty, so every reading is optional.
type OceanDetails struct {
	WaveHeight       *float64 `json:"sea_surface_wave_height,omitempty"`
	WaterSpeed       *float64 `json:"sea_water_speed,omitempty"`
	WaterTemperature *float64 `json:"sea_water_temperature,omitempty"`
}

type WeatherEntry = TimeSeriesEntry[WeatherDetails]

type OceanEntry = TimeSeriesEntry[OceanDetails]

// LocationForecast is the rendered weather and ocean state of one location at
// one hour. Unavailable readings hold the "-" placeholder.
type LocationForecast struct {
	Location         string `json:"location"`
	Day              string `json:"day"`
	Hour             int    `json:"hour"`
	AirTemperature   string `json:"air_temperature"`
	WindSpeed        string `json:"wind_speed"`
	SymbolCode       string `json:"symbol_code"`
	Precipitation    string `json:"precipitation"`
	WaveHeight       string `json:"wave_height"`
	WaterSpeed       string `json:"water_speed"`
	WaterTemperature string `json:"water_temperature"`
}

// Preview is what a list card shows for a location
type Preview struct {
	Location         string   `json:"location"`
	Image            string   `json:"image"`
	DistanceKm       *float64 `json:"distance_km,omitempty"`
	AirTemperature   string   `json:"air_temperature"`
	SymbolCode       string   `json:"symbol_code"`
	WaterTemperature string   `json:"water_temperature"`
}
