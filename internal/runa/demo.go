package runa

// DemoSource returns the built-in demo snippet for tag ("en" or "hu"),
// used by the CLI when no --file is given. Both demos compute the
// same Fibonacci-ish value (12), so `runa run --locale hu` and
// `runa run --locale en` return the same result; only the printed
// label text differs.
func DemoSource(tag string) string {
	if tag == "hu" {
		return huDemo
	}
	return enDemo
}

const enDemo = `fn fib(n) {
	if (n < 2) {
		return n;
	}
	return fib(n - 1) + fib(n - 2);
}

fn main() {
	let nums = [1, 2, 3, 4, 5];
	let total = 0;
	for (n in nums) {
		total = total + fib(n);
	}
	print("fib sum =", total);
	return total;
}
`

const huDemo = `fuggveny fib(n) {
	ha (n < 2) {
		vissza n;
	}
	vissza fib(n - 1) + fib(n - 2);
}

fuggveny fo() {
	legyen szamok = [1, 2, 3, 4, 5];
	legyen osszeg = 0;
	minden (n ben szamok) {
		osszeg = osszeg + fib(n);
	}
	kiir("fib osszeg =", osszeg);
	vissza osszeg;
}
`
