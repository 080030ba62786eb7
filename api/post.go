package api

// Post is a generated post as listed by the preview API.
type Post struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

type Error struct {
	Error string `json:"error"`
}
