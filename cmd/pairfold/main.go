// Command pairfold folds files of compound numbers and reports magnitudes.
//
//	pairfold sum numbers.txt
//	pairfold max-pair --engine flat numbers.txt
//	pairfold reduce '[[[[[9,8],1],2],3],4]'
//	pairfold magnitude '[[9,1],[1,9]]'
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
