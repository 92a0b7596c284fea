package openweather_dto

type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Main struct {
	AQI int `json:"aqi"`
}

type Components struct {
	CO   float64 `json:"co"`
	NO   float64 `json:"no"`
	NO2  float64 `json:"no2"`
	O3   float64 `json:"o3"`
	SO2  float64 `json:"so2"`
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
	NH3  float64 `json:"nh3"`
}

type Entry struct {
	Main       Main       `json:"main"`
	Components Components `json:"components"`
	Dt         int64      `json:"dt"`
}

type ResponseBody struct {
	Coord Coord   `json:"coord"`
	List  []Entry `json:"list"`
}
