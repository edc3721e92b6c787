// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package devapi

import (
	"time"

	"github.com/olegiv/portfolio-go/internal/model"
)

// DemoSeed returns a small sample portfolio for local development.
func DemoSeed() Seed {
	return Seed{
		Projects: []model.Project{
			{
				ID:          "1",
				Title:       "Portfolio Site",
				Description: "Server-rendered portfolio with **search** and category filters.",
				Category:    "Web Development",
				Tags:        []string{"go", "chi", "html"},
				Status:      model.StatusCompleted,
				ImageURL:    "https://images.unsplash.com/photo-1461749280684-dccba630e2f6",
				GithubURL:   "https://github.com/example/portfolio",
				Date:        model.YearMonth{Year: 2024, Month: time.May},
			},
			{
				ID:          "2",
				Title:       "Image Classifier",
				Description: "Transfer-learning classifier for plant diseases.",
				Category:    "AI/ML",
				Tags:        []string{"python", "pytorch"},
				Status:      model.StatusInProgress,
				ImageURL:    "https://images.unsplash.com/photo-1555949963-aa79dcee981c",
				DemoURL:     "https://demo.example.com/classifier",
				Date:        model.YearMonth{Year: 2025, Month: time.February},
			},
		},
		Certificates: []model.Certificate{
			{
				ID:            "1",
				Title:         "Cloud Practitioner",
				Description:   "Foundational cloud certification.",
				Issuer:        "AWS",
				ImageURL:      "https://images.unsplash.com/photo-1451187580459-43490279c0fa",
				CredentialURL: "https://verify.example.com/aws",
				Date:          model.YearMonth{Year: 2023, Month: time.September},
			},
		},
		Accomplishments: []model.Accomplishment{
			{
				ID:          "1",
				Title:       "Hackathon Winner",
				Description: "First place at the regional hackathon.",
				Category:    "Competition",
				ImageURL:    "https://images.unsplash.com/photo-1504384308090-c894fdcc538d",
				Date:        model.YearMonth{Year: 2023, Month: time.March},
			},
		},
	}
}
