package notifier

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/shopspring/decimal"

	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/pkg/logx"
)

type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(token string, chatID int64) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// NotifyDeal отправляет алерт о сохранённой сделке.
func (b *TelegramBot) NotifyDeal(ctx context.Context, deal entity.Deal) error {
	msg := tu.Message(
		tu.ID(b.chatID),
		FormatDeal(deal),
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	logger(ctx).Info("deal alert sent", logx.Stringer(logx.FieldDealID, deal.ID), slog.Int64("chat-id", b.chatID))

	return nil
}

// SendText отправляет простое текстовое сообщение.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// FormatDeal renders the alert body in Telegram HTML.
func FormatDeal(deal entity.Deal) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🔥 <b>%s deal saved</b>\n\n", html.EscapeString(deal.Verdict.String()))
	fmt.Fprintf(&sb, "🏠 <b>Name:</b> %s\n", html.EscapeString(deal.Name))

	if !deal.Location.IsEmpty() {
		fmt.Fprintf(&sb, "📍 <b>Location:</b> %s\n", html.EscapeString(deal.Location.String()))
	}

	fmt.Fprintf(&sb, "💰 <b>Price:</b> $%s\n", money(deal.Params.PurchasePrice))
	fmt.Fprintf(&sb, "💵 <b>Cash flow:</b> $%s/mo\n", money(deal.CashFlow))
	fmt.Fprintf(&sb, "📊 <b>Cap rate:</b> %s%%\n", percent(&deal.CapRate))
	fmt.Fprintf(&sb, "📈 <b>Cash-on-cash:</b> %s", percent(deal.CashOnCashReturn))

	return sb.String()
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func percent(v *float64) string {
	if v == nil {
		return "n/a"
	}

	return decimal.NewFromFloat(*v).StringFixed(2)
}
