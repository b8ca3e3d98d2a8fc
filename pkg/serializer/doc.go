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

// Package serializer writes command output in multiple formats.
//
// # Supported Formats
//
// Text:
//   - Strings and fmt.Stringer values written as is, one trailing newline
//   - The classic menu listing
//
// JSON:
//   - Machine-parseable, indented representation
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable
//   - gopkg.in/yaml.v3
//
// Table:
//   - Flattened FIELD/VALUE rows for terminal viewing
//
// # Usage
//
//	ser := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer func() {
//	    if closer, ok := ser.(serializer.Closer); ok {
//	        _ = closer.Close()
//	    }
//	}()
//	if err := ser.Serialize(ctx, items); err != nil {
//	    return err
//	}
package serializer
