package parse

import (
	"errors"
	"testing"
)

var errMine = errors.New("my error")

func TestMany(t *testing.T) {
	a := Token('a')

	t.Run("partial", func(t *testing.T) {
		for _, s := range []string{"", "a", "aa"} {
			expectIncomplete(t, Many(a)(partial(s)), 1)
		}
		expectSuccess(t, Many(a)(partial("bbb")), "bbb", []byte{})
		expectSuccess(t, Many(a)(partial("abb")), "bb", []byte("a"))
		expectSuccess(t, Many(a)(partial("aab")), "b", []byte("aa"))
	})

	t.Run("complete", func(t *testing.T) {
		expectSuccess(t, Many(a)(complete("")), "", []byte{})
		expectSuccess(t, Many(a)(complete("a")), "", []byte("a"))
		expectSuccess(t, Many(a)(complete("aa")), "", []byte("aa"))
		expectSuccess(t, Many(a)(complete("aab")), "b", []byte("aa"))
	})

	t.Run("committed item", func(t *testing.T) {
		ab := Then(a, Token('b'))
		in := complete("abac")
		err := expectFailure(t, in, Many(ab)(in), 3)
		var ee *ExpectedError
		if !errors.As(err, &ee) || ee.Got != 'c' {
			t.Errorf("err = %v, want expected 'b' got 'c'", err)
		}
	})

	t.Run("zero width", func(t *testing.T) {
		expectSuccess(t, Many(Return(7))(complete("x")), "x", []int{7})
	})
}

func TestMany1(t *testing.T) {
	a := Token('a')

	for _, s := range []string{"", "a", "aa"} {
		expectIncomplete(t, Many1(a)(partial(s)), 1)
	}

	in := partial("bbb")
	err := expectFailure(t, in, Many1(MapErr(a, func(error) error { return errMine }))(in), 0)
	if !errors.Is(err, errMine) {
		t.Errorf("err = %v, want %v", err, errMine)
	}

	expectSuccess(t, Many1(a)(partial("abb")), "bb", []byte("a"))
	expectSuccess(t, Many1(a)(partial("aab")), "b", []byte("aa"))

	in = complete("")
	err = expectFailure(t, in, Many1(a)(in), 0)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("err = %v, want %v", err, ErrUnexpectedEOF)
	}
	expectSuccess(t, Many1(a)(complete("a")), "", []byte("a"))
	expectSuccess(t, Many1(a)(complete("aa")), "", []byte("aa"))
	expectSuccess(t, Many1(a)(complete("aab")), "b", []byte("aa"))
}

func TestCount(t *testing.T) {
	p := Count(3, Token('a'))

	for _, s := range []string{"", "a", "aa"} {
		expectIncomplete(t, p(partial(s)), 1)
	}
	expectSuccess(t, p(partial("aaa")), "", []byte("aaa"))
	expectSuccess(t, p(partial("aaaa")), "a", []byte("aaa"))

	in := complete("")
	expectFailure(t, in, p(in), 0)
	in = complete("aa")
	err := expectFailure(t, in, p(in), 2)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("err = %v, want %v", err, ErrUnexpectedEOF)
	}
	expectSuccess(t, p(complete("aaa")), "", []byte("aaa"))
	expectSuccess(t, p(complete("aaaa")), "a", []byte("aaa"))

	expectSuccess(t, Count(3, Return('x'))(complete("")), "", []rune("xxx"))
}

func TestSkipMany(t *testing.T) {
	a := Token('a')
	p := Then(SkipMany(a), Token('b'))

	expectSuccess(t, p(partial("aaaabc")), "c", byte('b'))
	expectSuccess(t, p(partial("bc")), "c", byte('b'))
	expectIncomplete(t, SkipMany(a)(partial("aaa")), 1)
	expectSuccess(t, SkipMany(a)(complete("aaa")), "", struct{}{})
}

func TestSkipMany1(t *testing.T) {
	a := Token('a')

	expectSuccess(t, SkipMany1(a)(partial("aabc")), "bc", struct{}{})
	expectSuccess(t, SkipMany1(a)(partial("abc")), "bc", struct{}{})
	expectIncomplete(t, SkipMany1(a)(partial("aaa")), 1)
	expectSuccess(t, SkipMany1(a)(complete("aabc")), "bc", struct{}{})
	expectSuccess(t, SkipMany1(a)(complete("aaa")), "", struct{}{})

	for _, in := range []Input{partial("bc"), complete("bc")} {
		err := expectFailure(t, in, SkipMany1(FailWith[byte](errMine))(in), 0)
		if !errors.Is(err, errMine) {
			t.Errorf("err = %v, want %v", err, errMine)
		}
	}
}

func TestManyTill(t *testing.T) {
	semi := Token(';')

	expectSuccess(t, ManyTill(Any, semi)(partial("abc;def")), "def", []byte("abc"))
	expectSuccess(t, ManyTill(Any, semi)(complete("abc;def")), "def", []byte("abc"))
	expectSuccess(t, ManyTill(Any, Token('c'))(partial("abcd")), "d", []byte("ab"))
	expectSuccess(t, ManyTill(Any, semi)(partial(";")), "", []byte{})
	expectIncomplete(t, ManyTill(Any, Token('c'))(partial("abd")), 1)

	t.Run("item failure", func(t *testing.T) {
		in := partial("abcd")
		err := expectFailure(t, in, ManyTill(FailWith[byte](errMine), Token('c'))(in), 0)
		if !errors.Is(err, errMine) {
			t.Errorf("err = %v, want %v", err, errMine)
		}

		// the failure position of the item is kept
		p := Then(Token('a'), FailWith[byte](errMine))
		expectFailure(t, in, ManyTill(p, Token('c'))(in), 1)
	})

	t.Run("end of input", func(t *testing.T) {
		in := complete("abd")
		err := expectFailure(t, in, ManyTill(Any, Token('c'))(in), 3)
		if !errors.Is(err, ErrUnexpectedEOF) {
			t.Errorf("err = %v, want %v", err, ErrUnexpectedEOF)
		}
	})

	t.Run("committed end", func(t *testing.T) {
		end := Then(Token('x'), Token('y'))
		in := complete("abxz")
		expectFailure(t, in, ManyTill(Any, end)(in), 3)
	})

	t.Run("zero width item", func(t *testing.T) {
		in := complete("a")
		err := expectFailure(t, in, ManyTill(Return[byte]('x'), semi)(in), 0)
		if !errors.Is(err, ErrEndNotFound) {
			t.Errorf("err = %v, want %v", err, ErrEndNotFound)
		}
	})
}

func TestSepBy(t *testing.T) {
	semi := Token(';')
	dashes := String("--")

	t.Run("complete", func(t *testing.T) {
		tests := []struct {
			input string
			p     Parser[byte]
			sep   Parser[[]byte]
			rest  string
			want  string
		}{
			{"", Any, Map(semi, func(b byte) []byte { return []byte{b} }), "", ""},
			{"b", Token('a'), As(semi, []byte(";")), "b", ""},
			{"a", Any, As(semi, []byte(";")), "", "a"},
			{"a;c", Any, As(semi, []byte(";")), "", "ac"},
			{"a;c;", Any, As(semi, []byte(";")), ";", "ac"},
			{"a--c-", Any, dashes, "-", "ac"},
			{"abc", Any, As(semi, []byte(";")), "bc", "a"},
			{"a;bc", Any, As(semi, []byte(";")), "c", "ab"},
		}
		for _, tt := range tests {
			t.Run(tt.input, func(t *testing.T) {
				expectSuccess(t, SepBy(tt.p, tt.sep)(complete(tt.input)), tt.rest, []byte(tt.want))
			})
		}
	})

	t.Run("partial", func(t *testing.T) {
		expectSuccess(t, SepBy(Any, semi)(partial("abc")), "bc", []byte("a"))
		expectSuccess(t, SepBy(Any, semi)(partial("a;bc")), "c", []byte("ab"))

		for _, s := range []string{"", "a", "a;", "a;c", "a;c;"} {
			expectIncomplete(t, SepBy(Any, semi)(partial(s)), 1)
		}
		expectIncomplete(t, SepBy(Any, dashes)(partial("a--c-")), 1)
		expectIncomplete(t, SepBy(String("aaa"), dashes)(partial("aaa--a")), 2)
	})

	t.Run("committed separator", func(t *testing.T) {
		sep := Then(Token(','), Token(' '))
		in := complete("a,b, c,d")
		expectFailure(t, in, SepBy(Any, sep)(in), 2)
	})

	t.Run("committed item", func(t *testing.T) {
		item := Then(Token('<'), Token('>'))
		in := complete("<>;<x")
		expectFailure(t, in, SepBy(item, semi)(in), 4)
	})
}

func TestSepBy1(t *testing.T) {
	semi := Token(';')

	in := complete("")
	err := expectFailure(t, in, SepBy1(Any, semi)(in), 0)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("err = %v, want %v", err, ErrUnexpectedEOF)
	}

	in = complete("b")
	err = expectFailure(t, in, SepBy1(FailWith[struct{}](errMine), semi)(in), 0)
	if !errors.Is(err, errMine) {
		t.Errorf("err = %v, want %v", err, errMine)
	}

	expectSuccess(t, SepBy1(Any, semi)(complete("a")), "", []byte("a"))
	expectSuccess(t, SepBy1(Any, semi)(complete("a;c")), "", []byte("ac"))
	expectSuccess(t, SepBy1(Any, semi)(complete("a;c;")), ";", []byte("ac"))
	expectSuccess(t, SepBy1(Any, String("--"))(complete("a--c-")), "-", []byte("ac"))
	expectSuccess(t, SepBy1(Any, semi)(complete("abc")), "bc", []byte("a"))
	expectSuccess(t, SepBy1(Any, semi)(partial("a;bc")), "c", []byte("ab"))

	for _, s := range []string{"", "a", "a;", "a;c", "a;c;"} {
		expectIncomplete(t, SepBy1(Any, semi)(partial(s)), 1)
	}
	expectIncomplete(t, SepBy1(String("aaa"), String("--"))(partial("aaa--a")), 2)
}

func TestCommitLaw(t *testing.T) {
	// every wrapper must report the failure of "ab" on "ac" after one byte
	ab := Then(Token('a'), Token('b'))
	wrappers := map[string]Parser[[]byte]{
		"Many":      Many(ab),
		"Many1":     Many1(ab),
		"Count":     Count(2, ab),
		"SepBy":     SepBy(ab, Token(',')),
		"Or":        Or(Map(ab, func(b byte) []byte { return []byte{b} }), Return([]byte("z"))),
		"Option":    Option(Map(ab, func(b byte) []byte { return []byte{b} }), []byte("z")),
		"SkipMany":  As(SkipMany(ab), []byte(nil)),
		"ManyTill":  ManyTill(ab, Token('.')),
		"RepeatMax": Repeat(ab, AtMost(1), Slice[byte]()),
	}
	for name, p := range wrappers {
		t.Run(name, func(t *testing.T) {
			in := complete("ac")
			expectFailure(t, in, p(in), 1)
		})
	}
}
