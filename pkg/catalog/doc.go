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

// Package catalog holds the drink and ingredient collections barcart serves.
//
// A Store is built once from loaded records and is immutable afterwards;
// every lookup is read-only and safe for concurrent use. Ids compare
// case-sensitively, names compare ignoring case, and when keys collide the
// first record in load order wins.
//
// Data is read through a DataProvider. The default catalog is embedded in
// the binary; a local directory or an http(s) base URL can replace it:
//
//	store, err := catalog.LoadFrom(ctx, os.Getenv("BARCART_DATA_DIR"))
//
// A source holds ingredients, drinks and an optional popular list, each as
// .yaml, .yml or .json.
package catalog
