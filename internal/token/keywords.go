// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package token

import "strings"

// Keywords is a set of reserved words of a programming language.
type Keywords map[string]struct{}

// Contains reports whether word is a keyword.
func (kw Keywords) Contains(word string) bool {
	_, ok := kw[word]
	return ok
}

func newKeywords(lists ...string) Keywords {
	kw := make(Keywords)
	for _, list := range lists {
		for _, w := range strings.Fields(list) {
			kw[w] = struct{}{}
		}
	}
	return kw
}

const (
	goKeywords = `break case chan const continue default defer else fallthrough for func go goto if
		import interface map package range return select struct switch type var nil true false iota`
	jsKeywords = `break case catch class const continue debugger default delete do else export extends
		false finally for function if import in instanceof let new null return super switch this
		throw true try typeof var void while with yield async await of static get set undefined`
	tsKeywords = `abstract any as boolean constructor declare enum implements interface keyof module
		namespace never number private protected public readonly string symbol type unknown`
	pyKeywords = `False None True and as assert async await break class continue def del elif else
		except finally for from global if import in is lambda nonlocal not or pass raise return try
		while with yield self match case`
	rustKeywords = `as async await break const continue crate dyn else enum extern false fn for if impl
		in let loop match mod move mut pub ref return self Self static struct super trait true type
		unsafe use where while`
	javaKeywords = `abstract assert boolean break byte case catch char class const continue default do
		double else enum extends final finally float for goto if implements import instanceof int
		interface long native new null package private protected public return short static super
		switch synchronized this throw throws transient true false try void volatile while var`
	cKeywords = `auto break case char const continue default do double else enum extern float for goto
		if inline int long register restrict return short signed sizeof static struct switch
		typedef union unsigned void volatile while NULL`
	cppKeywords = `alignas alignof bool catch class constexpr decltype delete explicit export false
		friend mutable namespace new noexcept nullptr operator private protected public
		static_assert template this throw true try typename using virtual override final`
	csKeywords = `abstract as base bool break byte case catch char checked class const continue decimal
		default delegate do double else enum event explicit extern false finally fixed float for
		foreach goto if implicit in int interface internal is lock long namespace new null object
		operator out override params private protected public readonly ref return sbyte sealed short
		sizeof static string struct switch this throw true try typeof uint ulong unchecked unsafe
		ushort using virtual void volatile while var async await`
	swiftKeywords = `associatedtype class deinit enum extension fileprivate func import init inout
		internal let open operator private protocol public rethrows static struct subscript
		typealias var break case continue default defer do else fallthrough for guard if in repeat
		return switch where while as catch false is nil super self Self throw throws true try
		async await`
	kotlinKeywords = `as break class continue do else false for fun if in interface is null object
		package return super this throw true try typealias val var when while by catch constructor
		finally get import init set where data sealed override open private protected public
		internal companion suspend`
	rubyKeywords = `BEGIN END alias and begin break case class def defined? do else elsif end ensure
		false for if in module next nil not or redo rescue retry return self super then true undef
		unless until when while yield`
	phpKeywords = `abstract and array as break callable case catch class clone const continue declare
		default do echo else elseif empty enddeclare endfor endforeach endif endswitch endwhile
		extends final finally fn for foreach function global goto if implements include instanceof
		insteadof interface isset list match namespace new or print private protected public
		readonly require return static switch throw trait try unset use var while xor yield null
		true false`
)

// Default is the keyword set used when the language is unknown. It's the union of keywords that
// are common to C-like languages, JavaScript and Python.
var Default = newKeywords(
	`break case catch class const continue default do else export extends false finally for
	function func def if import in let new nil null return static struct switch this throw true
	try typeof var void while yield async await`,
)

var byLanguage = map[string]Keywords{
	"go":         newKeywords(goKeywords),
	"javascript": newKeywords(jsKeywords),
	"typescript": newKeywords(jsKeywords, tsKeywords),
	"tsx":        newKeywords(jsKeywords, tsKeywords),
	"python":     newKeywords(pyKeywords),
	"python 2":   newKeywords(pyKeywords),
	"rust":       newKeywords(rustKeywords),
	"java":       newKeywords(javaKeywords),
	"c":          newKeywords(cKeywords),
	"c++":        newKeywords(cKeywords, cppKeywords),
	"c#":         newKeywords(csKeywords),
	"objective-c": newKeywords(cKeywords,
		`self super id nil YES NO interface implementation end protocol property synthesize`),
	"swift":  newKeywords(swiftKeywords),
	"kotlin": newKeywords(kotlinKeywords),
	"ruby":   newKeywords(rubyKeywords),
	"php":    newKeywords(phpKeywords),
}

// KeywordsFor returns the keyword set for the named language. The name is compared case
// insensitive against lexer names (e.g. "Go", "JavaScript", "C++"). Unknown languages use
// [Default].
func KeywordsFor(language string) Keywords {
	if kw, ok := byLanguage[strings.ToLower(language)]; ok {
		return kw
	}
	return Default
}
