package opts

import (
	"context"
	"io"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger prints the short pterm messages that frame a command run
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
	w   io.Writer
}

// 🎯 NewUserLogger creates a new user logger writing to w
func NewUserLogger(ctx context.Context, w io.Writer) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
		w:   w,
	}
}

// 📊 LogStateChange announces a phase of the run
func (u *UserLogger) LogStateChange(description string) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).WithWriter(u.w).Println(description)
	u.log.Info().Msg(description)
}

// 🔍 LogValidation logs an outcome. A nil err with valid false is a warning.
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	switch {
	case valid:
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).WithWriter(u.w).Println(description)
		u.log.Info().Msg(description)
	case err != nil:
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(u.w).Println(description)
		pterm.Error.WithWriter(u.w).Println(err)
		u.log.Error().Err(err).Msg(description)
	default:
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).WithWriter(u.w).Println(description)
		u.log.Warn().Msg(description)
	}
}

// 📋 NextSteps prints a titled bullet list
func (u *UserLogger) NextSteps(title string, steps []string) {
	items := make([]pterm.BulletListItem, 0, len(steps))
	for _, s := range steps {
		items = append(items, pterm.BulletListItem{Level: 0, Text: s})
	}

	pterm.Fprintln(u.w, "\n"+title)
	if err := pterm.DefaultBulletList.WithItems(items).WithWriter(u.w).Render(); err != nil {
		u.log.Error().Err(err).Msg("rendering next steps")
	}
}
