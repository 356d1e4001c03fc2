package wsmodels

type ServerMessage struct {
	ToUserID string `json:"-"`
	Time     string `json:"time"`  // event time
	Code     string `json:"code"`  // event code
	Title    string `json:"title"` // short headline
	Msg      string `json:"msg"`   // event text
}
