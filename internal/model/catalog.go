package model

// Sport is a sport modality events can be organized for.
type Sport struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IconURL  string `json:"icon_url"`
	PhotoURL string `json:"photo_url"`
}

// Location is a city or region events take place in.
type Location struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
