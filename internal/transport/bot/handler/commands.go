package handler

import (
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"realty_analyzer/internal/domain/service/calculator"
	"realty_analyzer/internal/domain/value"
	"realty_analyzer/pkg/logx"
)

const startMessage = `🏠 <b>Realty analyzer</b>

/analyze <code>price=300000 rent=2000 tax=3000 insurance=1200</code>
Keys: price, down, rate, term, rent, tax, insurance, hoa, maintenance, vacancy, management. Missing keys take defaults.

/sentiment <code>Austin, TX</code>
Market outlook for a location.`

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, startMessage)
}

func (h *Handler) OnAnalyze(ctx *th.Context, msg telego.Message) error {
	params, err := calculator.ParametersFromMap(ParseArgs(msg.Text), calculator.DefaultParameters())
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, FormatError(err))
	}

	report, err := calculator.Analyze(params)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, FormatError(err))
	}

	return h.sendHTML(ctx, msg.Chat.ID, FormatReport(report))
}

func (h *Handler) OnSentiment(ctx *th.Context, msg telego.Message) error {
	if !h.market.Enabled() {
		return h.sendHTML(ctx, msg.Chat.ID, "❌ AI insights are disabled")
	}

	location := value.Location(commandArgument(msg.Text))

	sentiment, err := h.market.MarketSentiment(ctx, location)
	if err != nil {
		logger(ctx).Warn("market.MarketSentiment", logx.Error(err))

		return h.sendHTML(ctx, msg.Chat.ID, FormatError(err))
	}

	return h.sendHTML(ctx, msg.Chat.ID, FormatSentiment(sentiment))
}

// commandArgument отрезает саму команду (/sentiment@bot) от текста.
func commandArgument(text string) string {
	_, rest, _ := strings.Cut(strings.TrimSpace(text), " ")

	return strings.TrimSpace(rest)
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})

	return err //nolint:wrapcheck
}
