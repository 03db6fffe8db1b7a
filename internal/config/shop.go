package config

type Shop struct {
	Name           string `env:"SHOP_NAME" envDefault:"Alankar Garments"`
	Tagline        string `env:"SHOP_TAGLINE" envDefault:"Simple POS"`
	CurrencySymbol string `env:"SHOP_CURRENCY_SYMBOL" envDefault:"₹"`
	SkuPrefix      string `env:"SHOP_SKU_PREFIX" envDefault:"AGR-"`
}

type Print struct {
	Dir string `env:"PRINT_DIR" envDefault:"prints"`
}
