package catalog

import "github.com/shopspring/decimal"

func opt(name string, oneOff, monthly int64, features ...string) Option {
	return Option{
		Name:        name,
		OneOffCost:  decimal.NewFromInt(oneOff),
		MonthlyCost: decimal.NewFromInt(monthly),
		Features:    features,
	}
}

var defaultCatalog = New([]Category{
	{
		ID:          "hosting",
		Title:       "Web Hosting",
		Description: "Managed hosting for the client website.",
		Options: []Option{
			opt("Starter Hosting", 0, 99, "5 GB SSD storage", "1 website", "Daily backups"),
			opt("Business Hosting", 0, 249, "25 GB SSD storage", "5 websites", "Daily backups", "Staging area"),
			opt("Premium Hosting", 500, 499, "100 GB NVMe storage", "Unlimited websites", "Dedicated resources"),
		},
	},
	{
		ID:          "domain",
		Title:       "Domain Registration",
		Description: "Register or transfer the client's domain.",
		Options: []Option{
			opt(".co.za Domain", 150, 0, "1 year registration", "DNS management"),
			opt(".com Domain", 250, 0, "1 year registration", "DNS management", "WHOIS privacy"),
			opt("Domain Transfer", 200, 0, "Transfer from current registrar", "DNS migration"),
		},
	},
	{
		ID:          "email",
		Title:       "Business Email",
		Description: "Mailboxes on the client's domain.",
		Options: []Option{
			opt("Basic Email", 0, 49, "5 mailboxes", "Webmail"),
			opt("Professional Email", 0, 149, "25 mailboxes", "Webmail", "Spam filtering"),
			opt("Microsoft 365 Setup", 750, 299, "Exchange mailboxes", "Office apps", "Migration assistance"),
		},
	},
	{
		ID:          "ssl",
		Title:       "SSL Certificate",
		Description: "TLS certificates for secure browsing.",
		Options: []Option{
			opt("Standard SSL", 0, 0, "Domain validated", "Auto renewal"),
			opt("Wildcard SSL", 1200, 0, "All subdomains", "Organisation validated"),
			opt("EV SSL", 2500, 0, "Extended validation", "Warranty cover"),
		},
	},
	{
		ID:          "design",
		Title:       "Website Design",
		Description: "Design and build of the website itself.",
		Options: []Option{
			opt("Landing Page", 2500, 0, "Single page", "Contact form", "Mobile responsive"),
			opt("Business Website", 7500, 0, "Up to 8 pages", "CMS", "Basic SEO setup"),
			opt("E-commerce Store", 15000, 0, "Online shop", "Payment gateway", "Product import"),
		},
	},
	{
		ID:          "seo",
		Title:       "Search Engine Optimisation",
		Description: "Ongoing search visibility work.",
		Options: []Option{
			opt("SEO Audit", 1500, 0, "Technical audit", "Keyword report"),
			opt("Local SEO", 1000, 1200, "Google Business profile", "Monthly report"),
			opt("Growth SEO", 2000, 3500, "Content plan", "Link building", "Monthly report"),
		},
	},
	{
		ID:          "maintenance",
		Title:       "Maintenance & Support",
		Description: "Updates, fixes and content changes after launch.",
		Options: []Option{
			opt("Basic Maintenance", 0, 350, "Plugin updates", "Uptime monitoring"),
			opt("Standard Maintenance", 0, 750, "Plugin updates", "2 hours of changes", "Uptime monitoring"),
			opt("Priority Maintenance", 0, 1500, "Same-day response", "6 hours of changes", "Security patching"),
		},
	},
	{
		ID:          "backup",
		Title:       "Backup & Security",
		Description: "Off-site backups and threat protection.",
		Options: []Option{
			opt("Cloud Backup", 0, 120, "Daily off-site backup", "30 day retention"),
			opt("Security Suite", 300, 250, "Web application firewall", "Malware scanning", "Daily off-site backup"),
		},
	},
	{
		ID:          "it-support",
		Title:       "IT Support",
		Description: "Managed IT for the client's office.",
		Options: []Option{
			opt("Remote Support", 0, 950, "Remote helpdesk", "Business hours"),
			opt("Managed IT", 1000, 2500, "Remote and on-site support", "Device management", "Monthly review"),
			opt("Network Setup", 4500, 0, "Office network install", "Firewall configuration"),
		},
	},
})

// Default returns the built-in service catalog.
func Default() *Catalog { return defaultCatalog }
