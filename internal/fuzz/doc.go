// Package fuzztests houses Go fuzz harnesses that exercise the Varphi
// front-end (source -> lexer -> parser -> sema -> backend). Its goal is to
// smoke test robustness and guard against panics on arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер, парсер и компилятор.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
