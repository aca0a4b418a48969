package news

import "time"

// Seed provides a small default corpus so the agent can answer questions
// before any real ingestion pipeline has run.
func Seed() []Article {
	now := time.Now().UTC()
	return []Article{
		{
			ID:        "tech-quantum-chips",
			Section:   SectionTech,
			Title:     "Chipmakers race toward error-corrected quantum processors",
			Summary:   "Two rival labs demonstrated logical qubits with error rates low enough for repeatable computation.",
			Body:      "The demonstrations mark a shift from raw qubit counts to error correction as the benchmark that matters. Both labs used surface-code layouts and say commercial workloads remain years away.",
			UpdatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        "tech-open-models",
			Section:   SectionTech,
			Title:     "Open-weight language models close the gap on proprietary systems",
			Summary:   "A new benchmark suite shows openly licensed models matching closed systems on reasoning tasks.",
			Body:      "Researchers credit better data curation rather than parameter growth. Enterprises are reportedly shifting evaluation budgets toward self-hosted deployments.",
			UpdatedAt: now.Add(-26 * time.Hour),
		},
		{
			ID:        "world-climate-accord",
			Section:   SectionWorld,
			Title:     "Coastal nations sign adaptation funding accord",
			Summary:   "Fourteen countries agreed to a shared fund for relocating flood-threatened infrastructure.",
			Body:      "The accord sets a ten-year disbursement schedule and an independent audit board. Critics note the fund covers a fraction of projected relocation costs.",
			UpdatedAt: now.Add(-5 * time.Hour),
		},
		{
			ID:        "world-grain-corridor",
			Section:   SectionWorld,
			Title:     "Grain corridor reopens after three-week blockade",
			Summary:   "Shipping resumed through the corridor following internationally brokered talks.",
			Body:      "Insurers have cut war-risk premiums by half, and port authorities expect throughput to return to normal within a month.",
			UpdatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID:        "sports-marathon-record",
			Section:   SectionSports,
			Title:     "Marathon world record falls by eleven seconds",
			Summary:   "The record fell on a cool morning with a rotating pacer formation.",
			Body:      "The winning shoes are already under review by the governing body, reviving the debate over carbon-plate regulation in distance running.",
			UpdatedAt: now.Add(-8 * time.Hour),
		},
		{
			ID:        "sports-promotion-playoff",
			Section:   SectionSports,
			Title:     "Promotion playoff decided in stoppage-time penalty",
			Summary:   "A 94th-minute penalty sent the visitors up to the top flight for the first time in two decades.",
			Body:      "The club's supporters filled the away end for the trophy lift. The defeated side faces a squad rebuild with several loan deals expiring.",
			UpdatedAt: now.Add(-30 * time.Hour),
		},
		{
			ID:        "business-rate-cut",
			Section:   SectionBusiness,
			Title:     "Central bank delivers first rate cut of the cycle",
			Summary:   "Policymakers trimmed the benchmark rate by a quarter point, citing cooling inflation.",
			Body:      "Equity markets rallied on the announcement while the currency eased. Economists are split on whether a second cut arrives before year end.",
			UpdatedAt: now.Add(-3 * time.Hour),
		},
		{
			ID:        "business-chip-capex",
			Section:   SectionBusiness,
			Title:     "Semiconductor capital spending hits record on AI demand",
			Summary:   "Foundries committed a record sum to new fabrication capacity this quarter.",
			Body:      "Most of the spending targets advanced packaging rather than leading-edge lithography, a shift analysts attribute to AI accelerator demand.",
			UpdatedAt: now.Add(-20 * time.Hour),
		},
	}
}
