package quotes

// Symbol is a ticker and its company name.
type Symbol struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Symbols is the fixed ticker catalogue offered for stock positions.
var Symbols = []Symbol{
	{Symbol: "AAPL", Name: "Apple Inc."},
	{Symbol: "MSFT", Name: "Microsoft Corporation"},
	{Symbol: "GOOGL", Name: "Alphabet Inc."},
	{Symbol: "AMZN", Name: "Amazon.com, Inc."},
	{Symbol: "TSLA", Name: "Tesla, Inc."},
	{Symbol: "BRK.B", Name: "Berkshire Hathaway Inc."},
	{Symbol: "JNJ", Name: "Johnson & Johnson"},
	{Symbol: "V", Name: "Visa Inc."},
	{Symbol: "WMT", Name: "Walmart Inc."},
	{Symbol: "JPM", Name: "JPMorgan Chase & Co."},
	{Symbol: "NVDA", Name: "NVIDIA Corporation"},
	{Symbol: "PG", Name: "Procter & Gamble Co."},
	{Symbol: "DIS", Name: "The Walt Disney Company"},
	{Symbol: "HD", Name: "The Home Depot, Inc."},
	{Symbol: "MA", Name: "Mastercard Incorporated"},
	{Symbol: "BAC", Name: "Bank of America Corporation"},
	{Symbol: "XOM", Name: "Exxon Mobil Corporation"},
	{Symbol: "VZ", Name: "Verizon Communications Inc."},
	{Symbol: "ADBE", Name: "Adobe Inc."},
	{Symbol: "NFLX", Name: "Netflix, Inc."},
	{Symbol: "KO", Name: "The Coca-Cola Company"},
	{Symbol: "MRK", Name: "Merck & Co., Inc."},
	{Symbol: "CSCO", Name: "Cisco Systems, Inc."},
	{Symbol: "PFE", Name: "Pfizer Inc."},
	{Symbol: "PEP", Name: "PepsiCo, Inc."},
	{Symbol: "INTC", Name: "Intel Corporation"},
	{Symbol: "T", Name: "AT&T Inc."},
	{Symbol: "ORCL", Name: "Oracle Corporation"},
	{Symbol: "CVX", Name: "Chevron Corporation"},
	{Symbol: "CRM", Name: "Salesforce, Inc."},
	{Symbol: "NKE", Name: "NIKE, Inc."},
	{Symbol: "MCD", Name: "McDonald's Corporation"},
	{Symbol: "COST", Name: "Costco Wholesale Corporation"},
	{Symbol: "UNH", Name: "UnitedHealth Group Incorporated"},
	{Symbol: "IBM", Name: "International Business Machines Corporation"},
}
