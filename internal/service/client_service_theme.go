package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/dravis-client/internal/logger"
	"github.com/MKhiriev/dravis-client/internal/store"
	"github.com/MKhiriev/dravis-client/models"
)

// ThemePreferenceKey is the preference key holding the dark theme flag.
const ThemePreferenceKey = "darkMode"

type themeService struct {
	preferences store.PreferenceRepository
	logger      *logger.Logger
}

// NewThemeService returns a [ThemeService] backed by preferences.
func NewThemeService(preferences store.PreferenceRepository, logger *logger.Logger) ThemeService {
	return &themeService{preferences: preferences, logger: logger.WithComponent("theme")}
}

func (t *themeService) Load(ctx context.Context) models.Theme {
	value, err := t.preferences.GetPreference(ctx, ThemePreferenceKey)
	if errors.Is(err, store.ErrPreferenceNotFound) {
		return models.ThemeLight
	}
	if err != nil {
		t.logger.Err(err).Str("func", "themeService.Load").Msg("failed to read theme, using light")
		return models.ThemeLight
	}

	dark, err := strconv.ParseBool(value)
	if err != nil {
		t.logger.Warn().Str("func", "themeService.Load").Str("value", value).Msg("unparsable theme preference, using light")
		return models.ThemeLight
	}
	if dark {
		return models.ThemeDark
	}
	return models.ThemeLight
}

func (t *themeService) Save(ctx context.Context, theme models.Theme) error {
	if err := t.preferences.SetPreference(ctx, ThemePreferenceKey, strconv.FormatBool(theme.IsDark())); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
