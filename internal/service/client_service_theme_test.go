package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/dravis-client/internal/logger"
	"github.com/MKhiriev/dravis-client/internal/mock"
	"github.com/MKhiriev/dravis-client/internal/store"
	"github.com/MKhiriev/dravis-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestThemeService_Load(t *testing.T) {
	tests := []struct {
		name  string
		value string
		err   error
		want  models.Theme
	}{
		{name: "never stored", err: store.ErrPreferenceNotFound, want: models.ThemeLight},
		{name: "dark", value: "true", want: models.ThemeDark},
		{name: "light", value: "false", want: models.ThemeLight},
		{name: "garbage", value: "purple", want: models.ThemeLight},
		{name: "storage failure", err: errors.New("disk gone"), want: models.ThemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			prefs := mock.NewMockPreferenceRepository(ctrl)
			prefs.EXPECT().GetPreference(gomock.Any(), ThemePreferenceKey).Return(tt.value, tt.err)

			got := NewThemeService(prefs, logger.Nop()).Load(context.Background())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThemeService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	prefs := mock.NewMockPreferenceRepository(ctrl)
	svc := NewThemeService(prefs, logger.Nop())

	gomock.InOrder(
		prefs.EXPECT().SetPreference(gomock.Any(), "darkMode", "true").Return(nil),
		prefs.EXPECT().SetPreference(gomock.Any(), "darkMode", "false").Return(errors.New("locked")),
	)

	require.NoError(t, svc.Save(context.Background(), models.ThemeDark))
	assert.Error(t, svc.Save(context.Background(), models.ThemeLight))
}
