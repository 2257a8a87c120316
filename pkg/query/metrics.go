// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package query

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opAllIngredients          = "all_ingredients"
	opAllDrinks               = "all_drinks"
	opIngredientByID          = "ingredient_by_id"
	opDrinkByID               = "drink_by_id"
	opIngredientByName        = "ingredient_by_name"
	opDrinkByName             = "drink_by_name"
	opDrinksWithIngredient    = "drinks_with_ingredient"
	opDrinksWithIngredients   = "drinks_with_ingredients"
	opSearchDrinksByName      = "search_drinks_by_name"
	opFuzzySearchDrinksByName = "fuzzy_search_drinks_by_name"
	opRandomDrink             = "random_drink"
)

var (
	queryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barcart_query_total",
			Help: "Total number of catalog queries by operation",
		},
		[]string{"operation"},
	)

	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "barcart_query_duration_seconds",
			Help:    "Catalog query latency in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
		},
		[]string{"operation"},
	)

	queryResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "barcart_query_results",
			Help:    "Number of records returned per catalog query",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 500},
		},
		[]string{"operation"},
	)

	popularFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barcart_popular_fallback_total",
			Help: "Queries answered with the curated popular list because no criteria were given",
		},
		[]string{"operation"},
	)
)

func observe(op string, start time.Time, results int) {
	queryTotal.WithLabelValues(op).Inc()
	queryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	queryResults.WithLabelValues(op).Observe(float64(results))
}
