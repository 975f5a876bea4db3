package config

import (
	"testing"
)

// TestBarRect 测试资源条矩形计算
func TestBarRect(t *testing.T) {
	tests := []struct {
		name       string
		index      int
		widthRatio float64
		wantY      float64
		wantW      float64
	}{
		{
			name:       "生命条（上限1000）",
			index:      0,
			widthRatio: 1000.0 / 3000.0,
			wantY:      BarOriginY,
			wantW:      200,
		},
		{
			name:       "耐力条（上限3000）",
			index:      1,
			widthRatio: 1,
			wantY:      BarOriginY + BarHeight + BarSpacing,
			wantW:      BarFullWidth,
		},
		{
			name:       "魔力条（上限0）",
			index:      2,
			widthRatio: 0,
			wantY:      BarOriginY + 2*(BarHeight+BarSpacing),
			wantW:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := BarRect(tt.index, tt.widthRatio)

			// 使用epsilon比较浮点数，避免精度问题
			epsilon := 0.01
			if x != BarOriginX {
				t.Errorf("BarRect() x = %.2f, want %.2f", x, BarOriginX)
			}
			if y < tt.wantY-epsilon || y > tt.wantY+epsilon {
				t.Errorf("BarRect() y = %.2f, want %.2f", y, tt.wantY)
			}
			if w < tt.wantW-epsilon || w > tt.wantW+epsilon {
				t.Errorf("BarRect() w = %.2f, want %.2f", w, tt.wantW)
			}
			if h != BarHeight {
				t.Errorf("BarRect() h = %.2f, want %.2f", h, BarHeight)
			}
		})
	}
}

// TestMinimapOrigin 测试小地图位于屏幕右下角
func TestMinimapOrigin(t *testing.T) {
	x, y := MinimapOrigin()
	if x+MinimapSize+MinimapMargin != GameWindowWidth {
		t.Errorf("Minimap right edge = %.2f, want %d", x+MinimapSize+MinimapMargin, GameWindowWidth)
	}
	if y+MinimapSize+MinimapMargin != GameWindowHeight {
		t.Errorf("Minimap bottom edge = %.2f, want %d", y+MinimapSize+MinimapMargin, GameWindowHeight)
	}
}
