package quiz

// DefaultDeck is the built-in crypto-trading deck, used when no questions
// file or deck store is configured.
func DefaultDeck() Quiz {
	deck, err := NewQuiz([]Question{
		{
			Text:    "What does 'HODL' mean in crypto trading?",
			Options: []string{"Hold On for Dear Life", "Hourly Dollar Limit", "High Order Deadline", "Help Our Digital Ledger"},
			Answer:  "Hold On for Dear Life",
		},
		{
			Text:    "What is a 'whale' in cryptocurrency?",
			Options: []string{"A newbie trader", "A large holder of cryptocurrency", "A mining computer", "A fraudulent coin"},
			Answer:  "A large holder of cryptocurrency",
		},
		{
			Text:    "What does 'FOMO' stand for?",
			Options: []string{"Fear of Missing Out", "Funding of Market Orders", "Future Options Market Order", "Fast Operational Market Offering"},
			Answer:  "Fear of Missing Out",
		},
		{
			Text:    "What does 'DYOR' advise a trader to do?",
			Options: []string{"Diversify Your Open Risk", "Do Your Own Research", "Double Your Order Rate", "Defer Your Order Review"},
			Answer:  "Do Your Own Research",
		},
		{
			Text:    "What is 'cold storage'?",
			Options: []string{"A frozen trading account", "An exchange maintenance window", "Keeping keys on a device without internet access", "A stablecoin reserve"},
			Answer:  "Keeping keys on a device without internet access",
		},
		{
			Text:    "What is a 'rug pull'?",
			Options: []string{"A sudden exchange outage", "Developers draining a project's liquidity and vanishing", "A forced liquidation", "A hard fork dispute"},
			Answer:  "Developers draining a project's liquidity and vanishing",
		},
	})
	if err != nil {
		// The built-in deck is validated by tests; failing here means the
		// source itself is broken.
		panic(err)
	}
	return deck
}
