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

package descriptor

// module is an external dependency.
type module struct {
	configuration        string
	group, name, version string
	comment              string
}

// language describes how to build a project in one language.
type language struct {
	// A plugin applied alongside the application or java-library plugin.
	plugin, pluginVersion, pluginComment string

	testFramework TestFramework
	dependencies  []module

	// Source layout.
	sourceDir, extension string
	// Suffix of the class holding main, relative to the file name.
	mainClassSuffix string
}

var languageTable = map[Language]language{
	Java: {
		testFramework: JUnitJupiter,
		sourceDir:     "java",
		extension:     ".java",
	},
	Kotlin: {
		plugin:          "org.jetbrains.kotlin.jvm",
		pluginVersion:   "1.9.20",
		pluginComment:   "Apply the org.jetbrains.kotlin.jvm Plugin to add support for Kotlin.",
		testFramework:   KotlinTest,
		sourceDir:       "kotlin",
		extension:       ".kt",
		mainClassSuffix: "Kt",
	},
	Groovy: {
		plugin:        "groovy",
		pluginComment: "Apply the groovy Plugin to add support for Groovy.",
		testFramework: Spock,
		dependencies: []module{
			{"implementation", "org.apache.groovy", "groovy", "4.0.15", "Use the latest Groovy version for building this library"},
		},
		sourceDir: "groovy",
		extension: ".groovy",
	},
	Scala: {
		plugin:        "scala",
		pluginComment: "Apply the scala Plugin to add support for Scala.",
		testFramework: ScalaTest,
		dependencies: []module{
			{"implementation", "org.scala-lang", "scala-library", "2.13.12", "Use Scala 2.13 in our library project"},
		},
		sourceDir: "scala",
		extension: ".scala",
	},
}

func languageOf(l Language) language {
	return languageTable[l]
}

// framework describes how to test a project with one test framework.
type framework struct {
	// The language the framework requires, if any.
	requires Language
	// The language starter tests are written in.
	language Language

	dependencies []module
	// The method that selects the test engine on Test tasks.
	useMethod, useComment string
}

var junitLauncher = module{"testRuntimeOnly", "org.junit.platform", "junit-platform-launcher", "", ""}

var frameworkTable = map[TestFramework]framework{
	JUnit4: {
		language: Java,
		dependencies: []module{
			{"testImplementation", "junit", "junit", "4.13.2", "Use JUnit test framework."},
		},
	},
	JUnitJupiter: {
		language: Java,
		dependencies: []module{
			{"testImplementation", "org.junit.jupiter", "junit-jupiter", "5.10.0", "Use JUnit Jupiter for testing."},
			junitLauncher,
		},
		useMethod:  "useJUnitPlatform",
		useComment: "Use JUnit Platform for unit tests.",
	},
	TestNG: {
		language: Java,
		dependencies: []module{
			{"testImplementation", "org.testng", "testng", "7.8.0", "Use TestNG framework, also requires calling test.useTestNG() below"},
		},
		useMethod:  "useTestNG",
		useComment: "Use TestNG for unit tests.",
	},
	Spock: {
		requires: Groovy,
		language: Groovy,
		dependencies: []module{
			{"testImplementation", "org.spockframework", "spock-core", "2.3-groovy-4.0", "Use the awesome Spock testing and specification framework"},
			junitLauncher,
		},
		useMethod:  "useJUnitPlatform",
		useComment: "Use JUnit Platform for unit tests.",
	},
	KotlinTest: {
		requires: Kotlin,
		language: Kotlin,
		dependencies: []module{
			{"testImplementation", "org.jetbrains.kotlin", "kotlin-test-junit5", "", "Use the Kotlin JUnit 5 integration."},
			{"testImplementation", "org.junit.jupiter", "junit-jupiter-engine", "5.10.0", "Use the JUnit 5 integration."},
			junitLauncher,
		},
		useMethod:  "useJUnitPlatform",
		useComment: "Use JUnit Platform for unit tests.",
	},
	ScalaTest: {
		requires: Scala,
		language: Scala,
		dependencies: []module{
			{"testImplementation", "org.scalatest", "scalatest_2.13", "3.2.17", "Use Scalatest for testing our library"},
			{"testImplementation", "org.scalatestplus", "junit-5-10_2.13", "3.2.17.0", ""},
			junitLauncher,
		},
		useMethod:  "useJUnitPlatform",
		useComment: "Use JUnit Platform for unit tests.",
	},
}

func frameworkOf(f TestFramework) framework {
	return frameworkTable[f]
}

// Dependencies of the starter code itself.
var (
	appGuava = module{"implementation", "com.google.guava", "guava", "33.0.0-jre",
		"This dependency is used by the application."}
	libGuava = module{"implementation", "com.google.guava", "guava", "33.0.0-jre",
		"This dependency is used internally, and not exposed to consumers on their own compile classpath."}
	commonsMath = module{"api", "org.apache.commons", "commons-math3", "3.6.1",
		"This dependency is exported to consumers, that is to say found on their compile classpath."}
)

const (
	foojayPlugin  = "org.gradle.toolchains.foojay-resolver-convention"
	foojayVersion = "0.8.0"
)
