package cryptocurrency

import (
	"strings"
	"time"
)

// Cryptocurrency is reference data: created once, then linked from loan
// requests as the collateral asset. Nothing freezes a row after it has been
// linked; treat edits to linked rows as operator error.
type Cryptocurrency struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	CryptoID  string    `gorm:"size:32;uniqueIndex:ux_cryptocurrencies_crypto_id" json:"crypto_id"`
	Symbol    string    `gorm:"size:5;index" json:"symbol"`
	Name      string    `gorm:"size:50" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Cryptocurrency) TableName() string { return "cryptocurrencies" }

// Normalize uppercases the symbol and trims the display name, the canonical
// form all symbol rules are evaluated against.
func (c *Cryptocurrency) Normalize() {
	c.Symbol = strings.ToUpper(strings.TrimSpace(c.Symbol))
	c.Name = strings.TrimSpace(c.Name)
}
