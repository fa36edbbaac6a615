package server

// Server объединяет HTTP серверы отдельных сущностей.
type Server struct {
	AuthServer
	AnalyzeServer
	DealServer
	MarketServer
}

func NewServer(
	authServer AuthServer,
	analyzeServer AnalyzeServer,
	dealServer DealServer,
	marketServer MarketServer,
) Server {
	return Server{
		AuthServer:    authServer,
		AnalyzeServer: analyzeServer,
		DealServer:    dealServer,
		MarketServer:  marketServer,
	}
}
