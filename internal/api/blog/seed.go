package blogs

import (
	"camonk/internal/entity"
	"time"
)

// DefaultCoverImage prefills the compose form.
const DefaultCoverImage = "https://images.unsplash.com/photo-1499750310107-5fef28a66643?auto=format&fit=crop&q=80&w=1000"

// SeedBlogs is the fixed list served when no blog API is reachable. Both records are
// dated at publishedAt, normally the process start time.
func SeedBlogs(publishedAt time.Time) []entity.Blog {
	date := entity.FormatDate(publishedAt)
	return []entity.Blog{
		{
			ID:          1,
			Title:       "The Future of Fintech in 2026",
			Category:    []string{"FINANCE", "TECH"},
			Description: "How AI and blockchain are fundamentally reshaping modern financial services.",
			Date:        date,
			CoverImage:  "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&q=80&w=1000",
			Content: "The landscape of financial technology is evolving at an unprecedented pace. As we move into 2026, the convergence of artificial intelligence and decentralized ledger technology is creating new paradigms for transparency and efficiency.\n\n" +
				"Key trends include:\n" +
				"1. Autonomous Finance: AI-driven systems that manage personal wealth with zero human intervention.\n" +
				"2. CBDCs: Central Bank Digital Currencies becoming the norm for international settlements.\n" +
				"3. Zero-Knowledge Proofs: Enhanced privacy for sensitive financial transactions.\n\n" +
				"Stay tuned as we dive deeper into each of these topics in the coming weeks.",
		},
		{
			ID:          2,
			Title:       "Essential Skills for Modern CAs",
			Category:    []string{"CAREER", "SKILLS"},
			Description: "Beyond balance sheets: Why digital literacy is now a core requirement for Chartered Accountants.",
			Date:        date,
			CoverImage:  "https://images.unsplash.com/photo-1454165833767-1316b31c023d?auto=format&fit=crop&q=80&w=1000",
			Content: "The role of the Chartered Accountant has shifted from a number-cruncher to a strategic business advisor. Today, proficiency in data analytics and cloud computing is as critical as understanding tax code.\n\n" +
				"CAs who embrace automation are finding themselves with more time to provide high-value advisory services. Digital transformation isn't just a buzzword; it's the new reality of the profession.",
		},
	}
}
