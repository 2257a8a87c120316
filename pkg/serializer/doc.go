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

// Package serializer provides utilities for serializing data to various formats.
//
// The package supports three main output formats:
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable format, the CLI default
//   - Table: Human-readable tabular output
//
// Table output renders values implementing Tabular as aligned columns
// (the catalog list types do this); anything else is flattened to
// FIELD/VALUE pairs.
//
// Usage:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatYAML, outPath)
//	defer writer.(serializer.Closer).Close()
//	if err := writer.Serialize(ctx, drinks); err != nil {
//		return err
//	}
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, drinks)
//
// Reading is the mirror image. The catalog loader decodes its data files
// through NewReader, and FromFile accepts local paths as well as http(s)
// URLs fetched with HttpReader:
//
//	popular, err := serializer.FromFile[catalog.PopularFile]("https://example.com/popular.yaml")
//
// The package automatically handles:
//   - Proper content-type headers for HTTP responses
//   - Buffering to prevent partial responses on errors
//   - Resource cleanup via Close() method
package serializer
