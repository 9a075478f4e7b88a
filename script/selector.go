// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package script

// Selector identifies the model object that a group of configuration
// statements applies to.
//
// Selectors are comparable, and two selectors with the same fields select
// the same object.
type Selector interface {
	isSelector()
}

// TaskSelector selects a single existing task by name. Type is optional.
type TaskSelector struct {
	Name, Type string
}

// TaskTypeSelector selects every task of a given type.
type TaskTypeSelector struct {
	Type string
}

// ConventionSelector selects a project extension, such as java.
type ConventionSelector struct {
	Name string
}

func (TaskSelector) isSelector()       {}
func (TaskTypeSelector) isSelector()   {}
func (ConventionSelector) isSelector() {}
