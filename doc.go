// # doxygen2md
//
// `doxygen2md` converts the XML that Doxygen writes with `GENERATE_XML = YES`
// into one Markdown document for C++ API reference pages.
//
// Key capabilities:
//
//   - read `index.xml` and every compound document it lists, building a
//     namespace/class hierarchy from the qualified names.
//   - render Doxygen description markup (paragraphs, parameter lists, code
//     listings, tables, cross references) as GitHub-flavored Markdown.
//   - keep only the member sections and compound kinds you configure, in the
//     order you list them.
//   - emit a page per namespace, class and struct from text/template files;
//     the built-in templates can be replaced with your own.
//   - run doxygen for you when a `Doxyfile` is in the working directory.
//
// ## Usage
//
//	doxygen2md [flags] [doxygen-xml-directory]
//
// Examples:
//
//   - Convert an existing XML directory and print to stdout:
//
//     doxygen2md ./build/docs/xml
//
//   - Run the project's Doxyfile and write the result to a file:
//
//     doxygen2md -o docs/api.md
//
//   - Use your own page templates:
//
//     doxygen2md -t ./docs/templates ./build/docs/xml
//
// ## Supported Flags
//
//   - `-v`: log progress to stderr.
//   - `-a`: add `{#refid}` anchors to headings (on by default; `-a=false`
//     turns them off).
//   - `-c FILE`: YAML configuration; `.doxygen2md.yaml` is used when present.
//   - `-t DIR`: directory of `class.md`, `namespace.md` or `member.md`
//     templates replacing the built-in ones.
//   - `-o FILE`: write Markdown to `FILE` (stdout when omitted).
//   - `-l LANG`: language tag of fenced code blocks (default `cpp`).
//
// Flags that are set explicitly win over the configuration file.
//
// ## Configuration
//
//	language: cpp
//	anchors: true
//	compound:
//	  members:
//	    filter: [public-attrib, public-func, protected-attrib, protected-func]
//	  compounds:
//	    filter: [namespace, class, struct, union, typedef]
//
// Member sections are Doxygen sectiondef kinds (`public-func`,
// `private-attrib`, `friend`, ...). Anything not listed is left out.
//
// ## Shell Completion
//
//	doxygen2md completion bash        # bash
//	doxygen2md completion zsh         # zsh
//	doxygen2md completion fish | source
//	doxygen2md completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
//	doxygen2md gen-docs ./docs/cli
//
// Every command becomes its own Markdown file under the provided directory.
package main
