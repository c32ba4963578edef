// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Mcal is a calculator for the command line. It evaluates ordinary arithmetic
in double-precision floating point, with a little sugar.

Given arguments, mcal joins them with no separator, evaluates the result,
prints it and exits. Thus

	mcal '(5+5' '(10)' ')' /5

prints 11. With no arguments it reads expressions one per line.

Operators, from highest precedence:

	**      power, right-associative; ^ is a synonym
	-       negation
	* /     multiplication and division; X is a synonym for *
	+ -     addition and subtraction

A number next to a parenthesized expression multiplies it, as do two
adjacent parenthesized expressions, so 2(3) and (2)(3) are both 6.

Constants are upper case and are replaced by their values before anything
else happens:

	E       2.718281828459045
	PI      3.141592653589793

The replacement is textual, after operator synonyms are expanded, so a
constant can never contain X.

Functions are lower case and take one argument in parentheses:

	log      natural logarithm
	log_two  base 2 logarithm
	log_ten  base 10 logarithm
	sqrt     square root
	ceil     least integer not less than the argument
	floor    greatest integer not greater than the argument
	fac      factorial of the argument truncated toward zero

Interactively, each result is numbered, and $N stands for result N:

	[1] ~ 2^10
	   = 1024
	[2] ~ $1/4
	   = 256

The words c, clear, clean and wipe clear the screen; q, quit and exit leave.
Case and surrounding blanks do not matter, and a line of only blanks is empty.
A line that cannot be evaluated reports an error and is forgotten; the -v
flag says what went wrong.

Flags:

	-d name  set debug flag: flat, normalize
	-f fmt   printf format for results, such as %.4f
	-H file  keep line-editing history in file
	-j file  record every evaluation in the SQLite journal file
	-l       list the journal named by -j and exit
	-n       no color
	-p fmt   interactive prompt; %d is the result number
	-v       verbose error messages

An expression that begins with - must follow --.
*/
package main
