package domain

// PaymentRecord representa um pagamento vindo da fonte de registros (API de tabelas ou banco)
type PaymentRecord struct {
	// CreatedAt é o instante do pagamento, nos formatos "2006-01-02 15:04:05.000" ou ISO-8601
	CreatedAt string `json:"created_at"`
	// Amount em centavos; nil quando a fonte não informou valor
	Amount        *int64 `json:"amount"`
	CustomerID    string `json:"customer_id"`
	CustomerEmail string `json:"customer_email"`
}

// HasRevenue indica se o registro pode entrar nas agregações de receita
func (p PaymentRecord) HasRevenue() bool {
	return p.CreatedAt != "" && p.Amount != nil
}

// HasCustomer indica se o registro pode entrar nas agregações por cliente
func (p PaymentRecord) HasCustomer() bool {
	return p.HasRevenue() && p.CustomerID != ""
}

// MajorAmount converte o valor de centavos para a unidade principal da moeda
func (p PaymentRecord) MajorAmount() float64 {
	if p.Amount == nil {
		return 0
	}
	return float64(*p.Amount) / 100
}

// Int64Ptr é um atalho para montar registros em testes e adaptadores
func Int64Ptr(v int64) *int64 {
	return &v
}
