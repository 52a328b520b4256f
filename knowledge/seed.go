package knowledge

import "github.com/bankbuddy/bankbuddy/core"

// DefaultCategories returns the built-in banking topic buckets.
func DefaultCategories() []core.Category {
	return []core.Category{
		{
			ID:       "accounts",
			Name:     "Bank Accounts",
			Keywords: []string{"account", "savings", "checking", "deposit", "balance", "statement"},
		},
		{
			ID:       "cards",
			Name:     "Credit & Debit Cards",
			Keywords: []string{"card", "credit", "debit", "pin", "atm", "transaction", "payment"},
		},
		{
			ID:       "loans",
			Name:     "Loans & Mortgages",
			Keywords: []string{"loan", "mortgage", "interest", "rate", "payment", "apply", "application"},
		},
		{
			ID:       "transfers",
			Name:     "Transfers & Payments",
			Keywords: []string{"transfer", "payment", "wire", "send", "money", "pay", "bill"},
		},
		{
			ID:       "security",
			Name:     "Security & Access",
			Keywords: []string{"security", "password", "login", "authentication", "protect", "fraud"},
		},
	}
}

// DefaultQuestions returns the built-in banking FAQ entries.
func DefaultQuestions() []core.Question {
	return []core.Question{
		{
			ID:          "open-account",
			Question:    "How do I open a new bank account?",
			Answer:      "To open a new account, you can visit any branch with your ID proof, address proof, and passport-size photographs. Alternatively, you can also apply online through our website or mobile app and complete the verification process digitally.",
			CategoryIDs: []string{"accounts"},
			Keywords:    []string{"open", "new", "account", "create"},
		},
		{
			ID:          "check-balance",
			Question:    "How can I check my account balance?",
			Answer:      "You can check your account balance through our mobile banking app, online banking portal, by visiting any ATM, calling our 24/7 customer service, or visiting any branch. The mobile app and online banking provide real-time balance updates.",
			CategoryIDs: []string{"accounts"},
			Keywords:    []string{"check", "balance", "view", "see"},
		},
		{
			ID:          "account-fees",
			Question:    "What are the fees associated with my account?",
			Answer:      "Common account fees include monthly maintenance fees (typically $0-$15 depending on account type), overdraft fees ($35 per incident), ATM fees (varies by location and bank relationship), and wire transfer fees. Many fees can be waived by maintaining minimum balances or setting up direct deposits.",
			CategoryIDs: []string{"accounts"},
			Keywords:    []string{"fee", "charge", "cost", "expense"},
		},
		{
			ID:          "lost-card",
			Question:    "What should I do if I lose my card?",
			Answer:      "If your card is lost or stolen, immediately report it by calling our 24/7 hotline at 1-800-123-4567 to block the card. You can also freeze your card temporarily through the mobile app or online banking. A replacement card will be issued and typically arrives within 3-5 business days.",
			CategoryIDs: []string{"cards", "security"},
			Keywords:    []string{"lost", "stolen", "missing", "card", "replace"},
		},
		{
			ID:          "card-pin",
			Question:    "How do I change my card PIN?",
			Answer:      "You can change your card PIN by visiting any of our ATMs and selecting the 'PIN Change' option, through secure online banking, via our mobile app under Card Settings, or by calling customer service. For security reasons, avoid using easily guessable numbers like birthdates.",
			CategoryIDs: []string{"cards", "security"},
			Keywords:    []string{"pin", "change", "reset", "forgot", "password"},
		},
		{
			ID:          "card-limit",
			Question:    "How can I increase my card limit?",
			Answer:      "To request a credit limit increase, log into online banking or the mobile app and navigate to the card services section, or call our customer service. The approval depends on factors like payment history, account standing, and income. Regular reviews of your account may also result in automatic limit increases.",
			CategoryIDs: []string{"cards"},
			Keywords:    []string{"limit", "increase", "credit", "spending"},
		},
		{
			ID:          "loan-apply",
			Question:    "How do I apply for a loan?",
			Answer:      "You can apply for a loan online through our website or mobile app, by phone, or by visiting any branch. You'll need to provide identification, proof of income, credit history information, and details about the loan purpose. Pre-qualification tools are available online to check potential rates without impacting your credit score.",
			CategoryIDs: []string{"loans"},
			Keywords:    []string{"loan", "apply", "get", "application"},
		},
		{
			ID:          "loan-rates",
			Question:    "What are the current loan interest rates?",
			Answer:      "Current rates vary by loan type: personal loans range from 7.99% to 15.99% APR, auto loans from 4.49% to 9.99% APR, and mortgages from 6.25% to 7.5% APR. Rates depend on your credit score, loan amount, term length, and market conditions. Check our website for the most current rates or speak with a loan officer for personalized rates.",
			CategoryIDs: []string{"loans"},
			Keywords:    []string{"rate", "interest", "apr", "percentage"},
		},
		{
			ID:          "mortgage-process",
			Question:    "What is the mortgage application process?",
			Answer:      "The mortgage process involves: 1) Pre-approval where we review your finances and credit, 2) Home shopping within your pre-approved amount, 3) Formal application with property details, 4) Underwriting where we verify all information, 5) Home appraisal and inspection, 6) Final approval, and 7) Closing where you sign documents and receive your keys. The process typically takes 30-45 days from application to closing.",
			CategoryIDs: []string{"loans"},
			Keywords:    []string{"mortgage", "home loan", "house", "buy", "property"},
		},
		{
			ID:          "transfer-money",
			Question:    "How do I transfer money to another account?",
			Answer:      "You can transfer money through online banking, our mobile app, at a branch, by phone banking, or by setting up automatic transfers. For transfers to other banks, you'll need the recipient's account number and routing number. Internal transfers between your accounts are typically instant, while external transfers may take 1-3 business days.",
			CategoryIDs: []string{"transfers"},
			Keywords:    []string{"transfer", "send", "money", "account"},
		},
		{
			ID:          "international-transfer",
			Question:    "How do I make an international wire transfer?",
			Answer:      "For international wire transfers, you'll need the recipient's name, bank name, account number, SWIFT/BIC code, and sometimes an IBAN. You can initiate international transfers through online banking, our mobile app, or at any branch. Fees typically range from $30-$50, and transfers usually complete within 1-5 business days depending on the destination country.",
			CategoryIDs: []string{"transfers"},
			Keywords:    []string{"international", "wire", "transfer", "overseas", "foreign"},
		},
		{
			ID:          "bill-pay",
			Question:    "How does bill pay work?",
			Answer:      "Our bill pay service lets you pay bills electronically through online banking or our mobile app. You can set up one-time or recurring payments to service providers, businesses, or individuals. To set up, login and navigate to the Bill Pay section, add payees with their information, and schedule your payments. Electronic payments typically process within 1-2 business days, while check payments may take 5-7 days.",
			CategoryIDs: []string{"transfers"},
			Keywords:    []string{"bill", "pay", "payment", "utility"},
		},
		{
			ID:          "secure-account",
			Question:    "How can I keep my account secure?",
			Answer:      "To keep your account secure: 1) Use strong, unique passwords and change them regularly, 2) Enable two-factor authentication, 3) Never share login details, OTPs, or card information, 4) Monitor your accounts regularly for suspicious activities, 5) Use secure networks for banking, 6) Keep contact information updated, 7) Set up alerts for transactions, and 8) Update your mobile app and banking software regularly.",
			CategoryIDs: []string{"security"},
			Keywords:    []string{"secure", "protect", "safety", "password"},
		},
		{
			ID:          "report-fraud",
			Question:    "How do I report suspicious activity or fraud?",
			Answer:      "Immediately report suspicious activity by calling our fraud hotline at 1-800-123-4567 (available 24/7), through secure messaging in online banking, or by visiting any branch. Please note transaction details, dates, and any communication you may have received. We recommend changing your password and PIN immediately if you suspect your credentials have been compromised.",
			CategoryIDs: []string{"security"},
			Keywords:    []string{"fraud", "suspicious", "scam", "hack", "report"},
		},
		{
			ID:          "online-banking",
			Question:    "How do I set up online banking?",
			Answer:      "To set up online banking, visit our website and click on 'Enroll in Online Banking', or download our mobile app. You'll need your account number, SSN/Tax ID, and personal information to verify your identity. After verification, you'll create a username, password, and security questions. The setup process takes approximately 5-10 minutes, and you'll have immediate access to your accounts once completed.",
			CategoryIDs: []string{"accounts", "security"},
			Keywords:    []string{"online", "banking", "setup", "access", "enroll"},
		},
	}
}
