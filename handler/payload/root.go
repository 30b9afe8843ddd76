package payload

type WelcomeResponse struct {
	Message  string `json:"message"`
	Docs     string `json:"docs"`
	Database string `json:"database"`
}
