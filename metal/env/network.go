package env

type NetEnvironment struct {
	HttpHost string `validate:"required,lowercase,min=7"`
	HttpPort string `validate:"required,numeric"`
}

func (e NetEnvironment) GetHttpPort() string {
	return e.HttpPort
}

func (e NetEnvironment) GetHttpHost() string {
	return e.HttpHost
}

func (e NetEnvironment) GetHostURL() string {
	return e.HttpHost + ":" + e.HttpPort
}

// RateLimitEnvironment caps mutating requests per client IP and minute.
type RateLimitEnvironment struct {
	WritesPerMinute int `validate:"required,gte=1,lte=10000"`
}
