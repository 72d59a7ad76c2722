package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/application/port/mocks"
	"github.com/bnema/dumb-messenger/internal/domain/build"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
)

func TestCheckUpdateUseCase_NewerVersion(t *testing.T) {
	uc := NewCheckUpdateUseCase(
		stubUpdateChecker{info: &entity.UpdateInfo{LatestVersion: "1.0.8", ReleaseURL: "https://example.com/r/1.0.8"}},
		build.Info{Version: "1.0.7"},
	)

	out, err := uc.Execute(context.Background(), CheckUpdateInput{})
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if !out.UpdateAvailable {
		t.Fatal("UpdateAvailable = false, want true")
	}
	if out.ReleaseURL != "https://example.com/r/1.0.8" {
		t.Fatalf("ReleaseURL = %q", out.ReleaseURL)
	}
}

func TestCheckUpdateUseCase_VersionRules(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		want    bool
	}{
		{"1.0.7", "1.0.7", false},
		{"1.0.7", "1.0.8", true},
		{"1.0.7-20251223", "1.0.7", false},
		{"1.0.7", "not-a-version", false},
		{"dev", "9.9.9", false},
	}
	for _, tt := range tests {
		t.Run(tt.current+"->"+tt.latest, func(t *testing.T) {
			uc := NewCheckUpdateUseCase(
				stubUpdateChecker{info: &entity.UpdateInfo{LatestVersion: tt.latest}},
				build.Info{Version: tt.current},
			)
			out, err := uc.Execute(context.Background(), CheckUpdateInput{Manual: true})
			if err != nil {
				t.Fatalf("Execute() unexpected error: %v", err)
			}
			if out.UpdateAvailable != tt.want {
				t.Fatalf("UpdateAvailable = %v, want %v", out.UpdateAvailable, tt.want)
			}
		})
	}
}

func TestCheckUpdateUseCase_AutomaticFailureIsSuppressed(t *testing.T) {
	uc := NewCheckUpdateUseCase(
		stubUpdateChecker{err: port.ErrUpdateCheckTransient},
		build.Info{Version: "1.2.3"},
	)

	_, err := uc.Execute(context.Background(), CheckUpdateInput{})
	if !errors.Is(err, ErrUpdateCheckSuppressed) {
		t.Fatalf("err = %v, want ErrUpdateCheckSuppressed", err)
	}
	if !errors.Is(err, port.ErrUpdateCheckTransient) {
		t.Fatalf("err = %v, want wrapped ErrUpdateCheckTransient", err)
	}
}

func TestCheckUpdateUseCase_ManualFailurePropagates(t *testing.T) {
	boom := errors.New("boom")
	checker := mocks.NewMockUpdateChecker(t)
	checker.EXPECT().CheckForUpdate(mock.Anything, "1.2.3").Return(nil, boom).Once()

	uc := NewCheckUpdateUseCase(checker, build.Info{Version: "1.2.3"})

	_, err := uc.Execute(context.Background(), CheckUpdateInput{Manual: true})
	if !errors.Is(err, boom) {
		t.Fatalf("unexpected error: %v", err)
	}
	if errors.Is(err, ErrUpdateCheckSuppressed) {
		t.Fatal("manual failure must not be suppressed")
	}
}

type stubUpdateChecker struct {
	info *entity.UpdateInfo
	err  error
}

func (s stubUpdateChecker) CheckForUpdate(context.Context, string) (*entity.UpdateInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.info, nil
}
