package codegen

import (
	"fmt"
	"strings"

	"github.com/weaveffi/weaveffi/abi"
	"github.com/weaveffi/weaveffi/ir"
)

func kotlinType(t ir.TypeRef) string {
	switch t {
	case ir.I32, ir.U32:
		return "Int"
	case ir.I64, ir.Handle:
		return "Long"
	case ir.F64:
		return "Double"
	case ir.Bool:
		return "Boolean"
	case ir.StringUtf8:
		return "String"
	case ir.Bytes:
		return "ByteArray"
	default:
		panic(fmt.Sprintf("kotlin: unhandled type %q", t))
	}
}

func kotlinReturnType(t *ir.TypeRef) string {
	if t == nil {
		return "Unit"
	}
	return kotlinType(*t)
}

func jniType(t ir.TypeRef) string {
	switch t {
	case ir.I32, ir.U32:
		return "jint"
	case ir.I64, ir.Handle:
		return "jlong"
	case ir.F64:
		return "jdouble"
	case ir.Bool:
		return "jboolean"
	case ir.StringUtf8:
		return "jstring"
	case ir.Bytes:
		return "jbyteArray"
	default:
		panic(fmt.Sprintf("jni: unhandled type %q", t))
	}
}

func jniReturnType(t *ir.TypeRef) string {
	if t == nil {
		return "void"
	}
	return jniType(*t)
}

// jniFunctionName follows spec §4.4.3's fixed naming scheme, which does
// not encode the module: Java_com_weaveffi_WeaveFFI_<function>. Two
// modules exposing a function with the same name collide on this symbol;
// spec's invariants only guarantee uniqueness within a module, so this
// mirrors the spec text as written (see DESIGN.md).
func jniFunctionName(function string) string {
	return "Java_com_weaveffi_WeaveFFI_" + function
}

// renderKotlinClass renders WeaveFFI.kt: one external static method per
// function across every module, typed with Kotlin primitives.
func renderKotlinClass(api *ir.Api) string {
	var b strings.Builder
	b.WriteString("package com.weaveffi\n\n")
	b.WriteString("object WeaveFFI {\n")
	b.WriteString("    init {\n        System.loadLibrary(\"weaveffi\")\n    }\n\n")
	for _, m := range api.Modules {
		fmt.Fprintf(&b, "    // Module: %s\n", m.Name)
		for _, f := range m.Functions {
			var params []string
			for _, p := range f.Params {
				params = append(params, fmt.Sprintf("%s: %s", p.Name, kotlinType(p.Ty)))
			}
			fmt.Fprintf(&b, "    external fun %s(%s): %s\n", f.Name, strings.Join(params, ", "), kotlinReturnType(f.Returns))
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// renderJNIShim renders weaveffi_jni.c: one JNI entry point per function
// that acquires any string/byte-array inputs, calls the C symbol, maps a
// non-zero weaveffi_error to a thrown RuntimeException, and releases
// every acquired handle on every exit path (spec §4.4.3).
func renderJNIShim(api *ir.Api) string {
	var b strings.Builder
	b.WriteString("#include <jni.h>\n#include <string.h>\n#include \"weaveffi.h\"\n\n")
	for _, m := range api.Modules {
		for _, f := range m.Functions {
			renderJNIFunction(&b, m.Name, f)
		}
	}
	return b.String()
}

func renderJNIFunction(b *strings.Builder, module string, f ir.Function) {
	symbol := abi.SymbolName(module, f.Name)
	jniName := jniFunctionName(f.Name)
	retType := jniReturnType(f.Returns)

	var params []string
	params = append(params, "JNIEnv* env", "jobject thiz")
	for _, p := range f.Params {
		params = append(params, jniType(p.Ty)+" "+p.Name)
	}
	fmt.Fprintf(b, "JNIEXPORT %s JNICALL %s(%s) {\n", retType, jniName, strings.Join(params, ", "))
	b.WriteString("    weaveffi_error err = {0, NULL};\n")

	var callArgs []string
	var releases []string
	for _, p := range f.Params {
		switch p.Ty {
		case ir.StringUtf8:
			fmt.Fprintf(b, "    const char* %s_chars = (*env)->GetStringUTFChars(env, %s, NULL);\n", p.Name, p.Name)
			fmt.Fprintf(b, "    jsize %s_len = (*env)->GetStringUTFLength(env, %s);\n", p.Name, p.Name)
			callArgs = append(callArgs, fmt.Sprintf("(const uint8_t*)%s_chars, (size_t)%s_len", p.Name, p.Name))
			releases = append(releases, fmt.Sprintf("    (*env)->ReleaseStringUTFChars(env, %s, %s_chars);\n", p.Name, p.Name))
		case ir.Bytes:
			fmt.Fprintf(b, "    jbyte* %s_elems = (*env)->GetByteArrayElements(env, %s, NULL);\n", p.Name, p.Name)
			fmt.Fprintf(b, "    jsize %s_len = (*env)->GetArrayLength(env, %s);\n", p.Name, p.Name)
			callArgs = append(callArgs, fmt.Sprintf("(const uint8_t*)%s_elems, (size_t)%s_len", p.Name, p.Name))
			releases = append(releases, fmt.Sprintf("    (*env)->ReleaseByteArrayElements(env, %s, %s_elems, JNI_ABORT);\n", p.Name, p.Name))
		default:
			callArgs = append(callArgs, p.Name)
		}
	}

	shape := abi.Return(f.Returns)
	releaseAll := func() {
		for _, r := range releases {
			b.WriteString(r)
		}
	}

	switch {
	case f.Returns == nil:
		fmt.Fprintf(b, "    %s(%s, &err);\n", symbol, strings.Join(append(callArgs, "&err"), ", "))
		releaseAll()
		b.WriteString("    if (err.code != 0) {\n")
		b.WriteString("        jclass ex = (*env)->FindClass(env, \"java/lang/RuntimeException\");\n")
		b.WriteString("        (*env)->ThrowNew(env, ex, err.message);\n")
		b.WriteString("        weaveffi_error_clear(&err);\n")
		b.WriteString("    }\n")
	case *f.Returns == ir.StringUtf8:
		fmt.Fprintf(b, "    const char* rv = %s(%s, &err);\n", symbol, strings.Join(append(callArgs, "&err"), ", "))
		releaseAll()
		b.WriteString("    if (err.code != 0) {\n")
		b.WriteString("        jclass ex = (*env)->FindClass(env, \"java/lang/RuntimeException\");\n")
		b.WriteString("        (*env)->ThrowNew(env, ex, err.message);\n")
		b.WriteString("        weaveffi_error_clear(&err);\n")
		b.WriteString("        return (*env)->NewStringUTF(env, \"\");\n")
		b.WriteString("    }\n")
		b.WriteString("    jstring result = (*env)->NewStringUTF(env, rv ? rv : \"\");\n")
		b.WriteString("    weaveffi_free_string(rv);\n")
		b.WriteString("    return result;\n")
	case shape.NeedsOutLen:
		fmt.Fprintf(b, "    size_t out_len = 0;\n    const uint8_t* rv = %s(%s);\n", symbol, strings.Join(append(callArgs, "&out_len", "&err"), ", "))
		releaseAll()
		b.WriteString("    if (err.code != 0) {\n")
		b.WriteString("        jclass ex = (*env)->FindClass(env, \"java/lang/RuntimeException\");\n")
		b.WriteString("        (*env)->ThrowNew(env, ex, err.message);\n")
		b.WriteString("        weaveffi_error_clear(&err);\n")
		b.WriteString("        return (*env)->NewByteArray(env, 0);\n")
		b.WriteString("    }\n")
		b.WriteString("    jbyteArray result = (*env)->NewByteArray(env, (jsize)out_len);\n")
		b.WriteString("    (*env)->SetByteArrayRegion(env, result, 0, (jsize)out_len, (const jbyte*)rv);\n")
		b.WriteString("    weaveffi_free_bytes((uint8_t*)rv, out_len);\n")
		b.WriteString("    return result;\n")
	default:
		fmt.Fprintf(b, "    %s rv = %s(%s, &err);\n", abi.CValueType(*f.Returns), symbol, strings.Join(append(callArgs, "&err"), ", "))
		releaseAll()
		b.WriteString("    if (err.code != 0) {\n")
		b.WriteString("        jclass ex = (*env)->FindClass(env, \"java/lang/RuntimeException\");\n")
		b.WriteString("        (*env)->ThrowNew(env, ex, err.message);\n")
		b.WriteString("        weaveffi_error_clear(&err);\n")
		b.WriteString("        return 0;\n")
		b.WriteString("    }\n")
		b.WriteString("    return rv;\n")
	}
	b.WriteString("}\n\n")
}

func renderSettingsGradle() string {
	return "rootProject.name = \"weaveffi-android\"\n"
}

func renderBuildGradle() string {
	return `plugins {
    id("com.android.library")
    kotlin("android")
}

android {
    namespace = "com.weaveffi"
    compileSdk = 34

    defaultConfig {
        minSdk = 24
        externalNativeBuild {
            cmake {
                cppFlags += ""
            }
        }
    }

    externalNativeBuild {
        cmake {
            path = file("src/main/cpp/CMakeLists.txt")
        }
    }
}
`
}

func renderCMakeLists() string {
	return `cmake_minimum_required(VERSION 3.22)
project(weaveffi_jni)

add_library(weaveffi SHARED weaveffi_jni.c)

find_library(log-lib log)
target_link_libraries(weaveffi ${log-lib})
`
}
