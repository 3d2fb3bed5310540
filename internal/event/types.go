// internal/event/types.go
package event

const (
	TokenRotated   EventType = "TokenRotated"   // Токен повернули, Data: TokenRotation
	OverlayDrawn   EventType = "OverlayDrawn"   // Сота нарисована, Data: OverlayChange
	OverlayCleared EventType = "OverlayCleared" // Сота удалена, Data: OverlayChange
)

// TokenRotation is the payload of TokenRotated.
type TokenRotation struct {
	TokenID  string
	Rotation float64 // degrees
}

// OverlayChange is the payload of OverlayDrawn and OverlayCleared.
type OverlayChange struct {
	TokenID string
	Cells   int
}
