//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"syscall/js"

	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/lexicon"
	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/memstore"
	"github.com/svhawkins/czech-verb-conjugator/internal/usecase"
)

var (
	conjugator *usecase.ConjugateUseCase
	saved      *memstore.MemoryStore
)

func init() {
	var err error
	conjugator, err = usecase.NewConjugateUseCaseFromLexicon(lexicon.Default())
	if err != nil {
		panic(err)
	}
	saved = memstore.NewMemoryStore()
}

func main() {
	c := make(chan struct{})

	js.Global().Set("czConjugate", js.FuncOf(conjugate))
	js.Global().Set("czSaved", js.FuncOf(listSaved))
	js.Global().Set("czClear", js.FuncOf(clearSaved))

	<-c
}

// conjugate(word, [perfective]) returns the results as JSON and remembers them.
func conjugate(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: czConjugate(word, [perfective])")
	}

	opts := usecase.ConjugateOptions{}
	if len(args) > 1 {
		opts.Perfective = args[1].Truthy()
	}

	results, err := conjugator.Conjugate(context.Background(), args[0].String(), opts)
	if err != nil {
		return makeError(err.Error())
	}
	saved.PutTable(results[0].Word, results[0].Flags, results)

	return makeResult(map[string]interface{}{
		"results": results,
	})
}

func listSaved(this js.Value, args []js.Value) interface{} {
	all, _ := saved.ListTables()
	words := make([]string, 0, len(all))
	for _, c := range all {
		words = append(words, c.Word)
	}
	return makeResult(map[string]interface{}{
		"count": saved.Len(),
		"words": words,
	})
}

func clearSaved(this js.Value, args []js.Value) interface{} {
	saved = memstore.NewMemoryStore()
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
